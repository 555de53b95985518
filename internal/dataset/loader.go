package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

// Sheets that never hold an indicator table. Compared case-insensitively.
var reservedSheets = map[string]bool{
	"readme":          true,
	"regional_global": true,
}

const countryColumn = "country"

// Accepted headers for the region code column, in order of preference.
var regionColumns = []string{"unicef_region", "region_code", "region"}

// Loader reads coverage workbooks into Datasets.
type Loader struct {
	resolver *region.Resolver
	logger   *slog.Logger
}

// NewLoader returns a Loader resolving region labels with resolver.
// A nil resolver uses region.Default; a nil logger discards output.
func NewLoader(resolver *region.Resolver, logger *slog.Logger) *Loader {
	if resolver == nil {
		resolver = region.Default()
	}
	return &Loader{
		resolver: resolver,
		logger:   logging.OrDiscard(logger),
	}
}

// Stat returns the current identity of the file at path.
func Stat(path string) (Identity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Identity{}, &SourceNotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return Identity{}, &SourceNotFoundError{Path: path, Err: errors.New("is a directory")}
	}
	return Identity{Path: path, ModTime: info.ModTime(), Size: info.Size()}, nil
}

// Load reads the workbook at path.
func (l *Loader) Load(path string) (ds *Dataset, err error) {
	start := time.Now()

	identity, err := Stat(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	defer logging.CloseInto(&err, f, l.logger, "workbook")

	ds, err = l.LoadWorkbook(f, identity)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(l.logger, "dataset_loaded",
		slog.String("component", "dataset_loader"),
		slog.String("source", path),
		slog.Int("indicators", ds.Len()),
		slog.Int("countries", len(ds.Countries())),
		slog.Duration("duration", time.Since(start)))

	return ds, nil
}

// LoadWorkbook converts an open workbook into a Dataset stamped with source.
// Reserved sheets are skipped; every other sheet becomes one indicator table
// named after the sheet.
func (l *Loader) LoadWorkbook(f *excelize.File, source Identity) (*Dataset, error) {
	var tables []*IndicatorTable

	for _, sheet := range f.GetSheetList() {
		if reservedSheets[strings.ToLower(strings.TrimSpace(sheet))] {
			continue
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, &SourceFormatError{Path: source.Path, Sheet: sheet, Reason: fmt.Sprintf("unreadable sheet: %v", err)}
		}

		table, err := l.parseSheet(source.Path, strings.TrimSpace(sheet), rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	if len(tables) == 0 {
		return nil, &SourceFormatError{Path: source.Path, Reason: "no indicator sheets"}
	}

	return New(source, tables...), nil
}

type sheetLayout struct {
	country int
	region  int
	years   []yearColumn // in header order, one column per year
}

type yearColumn struct {
	col  int
	year int
}

func (l *Loader) parseSheet(path, sheet string, rows [][]string) (*IndicatorTable, error) {
	if len(rows) == 0 {
		return nil, &SourceFormatError{Path: path, Sheet: sheet, Reason: "missing header row"}
	}

	layout, err := parseHeader(rows[0])
	if err != nil {
		return nil, &SourceFormatError{Path: path, Sheet: sheet, Reason: err.Error()}
	}

	years := make([]int, 0, len(layout.years))
	for _, yc := range layout.years {
		years = append(years, yc.year)
	}

	raw := make([]RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		country := strings.TrimSpace(cell(cells, layout.country))
		if country == "" {
			continue
		}

		coverage := make(map[int]float64, len(layout.years))
		for _, yc := range layout.years {
			if value, ok := parseCoverage(cell(cells, yc.col)); ok {
				coverage[yc.year] = value
			}
		}

		raw = append(raw, RawRow{
			Country:    country,
			RegionCode: strings.TrimSpace(cell(cells, layout.region)),
			Coverage:   coverage,
		})
	}

	return NewTable(sheet, years, raw, l.resolver), nil
}

func parseHeader(header []string) (sheetLayout, error) {
	layout := sheetLayout{country: -1, region: -1}
	regionRank := len(regionColumns)
	seen := make(map[int]bool)

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == countryColumn && layout.country < 0 {
			layout.country = i
			continue
		}
		for rank, candidate := range regionColumns {
			if name == candidate && rank < regionRank {
				layout.region = i
				regionRank = rank
			}
		}
		// A repeated year keeps its first column, like a repeated country row.
		if year, ok := parseYear(name); ok && !seen[year] {
			seen[year] = true
			layout.years = append(layout.years, yearColumn{col: i, year: year})
		}
	}

	if layout.country < 0 {
		return layout, errors.New("missing country column")
	}
	if len(layout.years) == 0 {
		return layout, errors.New("no year columns")
	}
	return layout, nil
}

// parseYear accepts headers made only of digits, e.g. "2023".
func parseYear(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return year, true
}

// parseCoverage returns the numeric value of a cell. Blank, non-numeric and
// non-finite cells are unknown. Out-of-range values are kept as recorded.
func parseCoverage(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
