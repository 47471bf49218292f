package datavis

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormat returns a function formatting numbers the way the given
// locale writes them, with grouping separators. Fractional digits are kept
// only when the value is not an integer.
func NumberFormat(locale string) func(float64) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return func(f float64) string {
		if math.IsNaN(f) {
			return ""
		}
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return p.Sprintf("%d", int64(f))
		}
		return p.Sprintf("%.2f", f)
	}
}

// YearFormat formats a year without any grouping separator.
func YearFormat(f float64) string {
	return strconv.FormatInt(int64(math.Round(f)), 10)
}

// DecimalFormat formats numbers with the fewest digits needed, up to prec.
func DecimalFormat(prec int) func(float64) string {
	return func(f float64) string {
		str := strconv.FormatFloat(f, 'f', prec, 64)
		if prec > 0 {
			for str[len(str)-1] == '0' {
				str = str[:len(str)-1]
			}
			if str[len(str)-1] == '.' {
				str = str[:len(str)-1]
			}
		}
		return str
	}
}
