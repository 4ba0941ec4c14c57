package guestimport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"wedding-rsvp/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errs.New("unsupported input format, expected .xlsx or .csv")

// Sheet is one worksheet as raw cell text, row-major.
type Sheet struct {
	Name string
	Rows [][]string
}

// LoadSheets reads the named sheets of an .xlsx workbook, or every sheet when
// names is empty. A .csv file is a single sheet named after the file.
func LoadSheets(path string, names []string) ([]Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, names)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, errs.Wrapf(ErrUnsupportedFormat, "input %s", path)
	}
}

func loadWorkbook(path string, names []string) (sheets []Sheet, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to open workbook %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errs.Wrap(closeErr, "failed to close workbook")
		}
	}()

	available := f.GetSheetList()
	if len(names) == 0 {
		names = available
	}

	for _, name := range names {
		if !contains(available, name) {
			return nil, errs.Newf("sheet %q not found in %s", name, path)
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to read sheet %q", name)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

func loadCSV(path string) ([]Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.Wrapf(err, "failed to parse %s", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []Sheet{{Name: name, Rows: rows}}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
