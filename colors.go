package datavis

type Palette []string

// Set2 is the qualitative palette of ColorBrewer with eight colors.
var Set2 Palette

func init() {
	Set2 = splitColorString("66c2a5fc8d628da0cbe78ac3a6d854ffd92fe5c494b3b3b3")
}

// Ordinal assigns the colors of the palette to keys in the order they are
// given, cycling when there are more keys than colors. Unknown keys get the
// first color.
func (p Palette) Ordinal(keys []string) func(string) string {
	set := make(map[string]string)
	for _, k := range keys {
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = p[len(set)%len(p)]
	}
	return func(k string) string {
		if c, ok := set[k]; ok {
			return c
		}
		return p[0]
	}
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
