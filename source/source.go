// Package source loads tabular data (CSV or XLSX) from local files or http
// locations into records keyed by column name.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmpty  = errors.New("no header found")
	ErrScheme = errors.New("unsupported scheme")
	ErrStatus = errors.New("request does not end with success result code")
)

// LoadError reports the location that could not be loaded.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Record maps a column name to the raw text of a cell. Values are never
// converted: parsing numbers is left to the consumer.
type Record map[string]string

type Table struct {
	Columns []string
	Records []Record
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

func (t *Table) Len() int {
	return len(t.Records)
}

// Load reads the table found at location. location can be a path, a file://
// URL or an http(s):// URL. Files with the .xlsx extension are read as
// workbooks (first sheet only), everything else as CSV.
func Load(ctx context.Context, location string) (*Table, error) {
	r, err := readFrom(ctx, location)
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	defer r.Close()

	var tb *Table
	if isWorkbook(location) {
		tb, err = ReadXLSX(r)
	} else {
		tb, err = ReadCSV(r)
	}
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	return tb, nil
}

// ReadCSV reads a CSV document whose first row gives the column names.
func ReadCSV(r io.Reader) (*Table, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1

	head, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	tb := createTable(head)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		tb.append(row)
	}
	return tb, nil
}

// ReadXLSX reads the first sheet of a workbook. The first row of the sheet
// gives the column names.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	tb := createTable(rows[0])
	for _, row := range rows[1:] {
		tb.append(row)
	}
	return tb, nil
}

func createTable(head []string) *Table {
	cols := make([]string, len(head))
	for i := range head {
		cols[i] = strings.TrimSpace(head[i])
	}
	if len(cols) > 0 {
		cols[0] = strings.TrimPrefix(cols[0], "\ufeff")
	}
	return &Table{
		Columns: cols,
	}
}

func (t *Table) append(row []string) {
	rec := make(Record, len(t.Columns))
	for i, c := range t.Columns {
		if i < len(row) {
			rec[c] = row[i]
		} else {
			rec[c] = ""
		}
	}
	t.Records = append(t.Records, rec)
}

func isWorkbook(location string) bool {
	if u, err := url.Parse(location); err == nil && u.Scheme != "" {
		location = u.Path
	}
	return strings.EqualFold(path.Ext(location), ".xlsx")
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.Contains(location, "://") {
		return os.Open(location)
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			res.Body.Close()
			return nil, fmt.Errorf("%w (%s)", ErrStatus, res.Status)
		}
		return res.Body, nil
	case "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: %w", u.Scheme, ErrScheme)
	}
}
