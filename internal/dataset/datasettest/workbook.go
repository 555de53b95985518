// Package datasettest writes coverage workbooks for tests.
package datasettest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet. A nil cell is written blank.
type Sheet struct {
	Name   string
	Header []any
	Rows   [][]any
}

// WriteWorkbook saves sheets as an .xlsx file named name inside dir and
// returns its path.
func WriteWorkbook(t testing.TB, dir, name string, sheets []Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("closing workbook: %v", err)
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("renaming sheet %q: %v", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("creating sheet %q: %v", sheet.Name, err)
		}

		header := sheet.Header
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			t.Fatalf("writing header of %q: %v", sheet.Name, err)
		}
		for r, row := range sheet.Rows {
			cells := row
			axis, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet.Name, axis, &cells); err != nil {
				t.Fatalf("writing row %d of %q: %v", r, sheet.Name, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook %s: %v", path, err)
	}
	return path
}

// Header builds a standard indicator header: country, unicef_region, then
// one column per year.
func Header(years ...int) []any {
	header := []any{"country", "unicef_region"}
	for _, year := range years {
		header = append(header, year)
	}
	return header
}

// SampleSheets returns a small workbook: three indicators over four
// countries for 2019-2021, plus the two reserved sheets.
//
// Notable cells: Lebanon has no DTP3 value in 2020; Atlantis has a zero DTP1
// in 2021 and an unknown region code; Jordan's 2021 DTP3 exceeds its DTP1.
func SampleSheets() []Sheet {
	return []Sheet{
		{
			Name:   "ReadMe",
			Header: []any{"About"},
			Rows:   [][]any{{"WHO/UNICEF estimates of national immunization coverage"}},
		},
		{
			Name:   "DTP1",
			Header: Header(2019, 2020, 2021),
			Rows: [][]any{
				{"Jordan", "MENA", 97, 96, 80},
				{"Lebanon", "MENA", 90, 80, 75},
				{"Nepal", "ROSA", 95, 93, 96},
				{"Atlantis", "ZZZZ", 50, nil, 0},
			},
		},
		{
			Name:   "DTP3",
			Header: Header(2019, 2020, 2021),
			Rows: [][]any{
				{"Jordan", "MENA", 94, 90, 90},
				{"Lebanon", "MENA", 82, nil, 67},
				{"Nepal", "ROSA", 93, 84, 91},
				{"Atlantis", "ZZZZ", 40, 30, 10},
			},
		},
		{
			Name:   "MCV1",
			Header: Header(2019, 2020, 2021),
			Rows: [][]any{
				{"Jordan", "MENA", 92, 88, 86},
				{"Lebanon", "MENA", 83, 77, 70},
				{"Nepal", "ROSA", 92, 90, 90},
				{"Atlantis", "ZZZZ", nil, nil, nil},
			},
		},
		{
			Name:   "regional_global",
			Header: []any{"region", 2019, 2020, 2021},
			Rows:   [][]any{{"Global", 86, 83, 81}},
		},
	}
}

// WriteSample writes SampleSheets to dir/coverage.xlsx and returns the path.
func WriteSample(t testing.TB, dir string) string {
	t.Helper()
	return WriteWorkbook(t, dir, "coverage.xlsx", SampleSheets())
}
