// Package dataset holds the normalized, read-only view of a coverage workbook:
// one IndicatorTable per vaccine sheet, each row keyed by country with coverage
// values per year.
package dataset

import (
	"sort"
	"time"

	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

// Identity identifies one version of a source file. Two loads with equal
// identities are expected to produce structurally identical datasets.
type Identity struct {
	Path    string    `json:"path"`
	ModTime time.Time `json:"modTime"`
	Size    int64     `json:"size"`
}

// Equal reports whether two identities refer to the same version of a file.
func (id Identity) Equal(other Identity) bool {
	return id.Path == other.Path && id.ModTime.Equal(other.ModTime) && id.Size == other.Size
}

// Row is one country in an indicator table. A year missing from the row is
// unknown, never zero.
type Row struct {
	Country     string
	RegionCode  string
	RegionLabel string
	coverage    map[int]float64
}

// Value returns the recorded coverage for year.
func (r Row) Value(year int) (float64, bool) {
	v, ok := r.coverage[year]
	return v, ok
}

// Years returns the years with a recorded value, ascending.
func (r Row) Years() []int {
	years := make([]int, 0, len(r.coverage))
	for year := range r.coverage {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// RawRow is the unresolved input for a Row.
type RawRow struct {
	Country    string
	RegionCode string
	Coverage   map[int]float64
}

// IndicatorTable holds every country row for one indicator.
type IndicatorTable struct {
	indicator string
	rows      []Row
	index     map[string]int
	years     []int
}

// NewTable builds an IndicatorTable, resolving each row's region label with
// resolver. years lists the year columns declared by the source; when empty
// it is derived from the rows. Later duplicates of a country are dropped.
func NewTable(indicator string, years []int, rows []RawRow, resolver *region.Resolver) *IndicatorTable {
	table := &IndicatorTable{
		indicator: indicator,
		rows:      make([]Row, 0, len(rows)),
		index:     make(map[string]int, len(rows)),
	}

	yearSet := make(map[int]struct{}, len(years))
	for _, y := range years {
		yearSet[y] = struct{}{}
	}

	for _, raw := range rows {
		if raw.Country == "" {
			continue
		}
		if _, dup := table.index[raw.Country]; dup {
			continue
		}
		coverage := make(map[int]float64, len(raw.Coverage))
		for year, value := range raw.Coverage {
			coverage[year] = value
			if len(years) == 0 {
				yearSet[year] = struct{}{}
			}
		}
		table.index[raw.Country] = len(table.rows)
		table.rows = append(table.rows, Row{
			Country:     raw.Country,
			RegionCode:  raw.RegionCode,
			RegionLabel: resolver.Resolve(raw.RegionCode),
			coverage:    coverage,
		})
	}

	table.years = sortedYears(yearSet)
	return table
}

// Indicator returns the indicator code, e.g. "DTP1".
func (t *IndicatorTable) Indicator() string {
	return t.indicator
}

// Rows returns the table rows in source order.
func (t *IndicatorTable) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Row looks up the row for country.
func (t *IndicatorTable) Row(country string) (Row, bool) {
	i, ok := t.index[country]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Years returns the year columns of the table, ascending.
func (t *IndicatorTable) Years() []int {
	years := make([]int, len(t.years))
	copy(years, t.years)
	return years
}

// Len returns the number of rows.
func (t *IndicatorTable) Len() int {
	return len(t.rows)
}

// Dataset is an immutable snapshot of every indicator table loaded from one
// source. It is safe to share between goroutines.
type Dataset struct {
	source     Identity
	tables     map[string]*IndicatorTable
	indicators []string
}

// New assembles a Dataset. If two tables share an indicator code the first
// one is kept.
func New(source Identity, tables ...*IndicatorTable) *Dataset {
	ds := &Dataset{
		source: source,
		tables: make(map[string]*IndicatorTable, len(tables)),
	}
	for _, table := range tables {
		if table == nil {
			continue
		}
		if _, exists := ds.tables[table.indicator]; exists {
			continue
		}
		ds.tables[table.indicator] = table
		ds.indicators = append(ds.indicators, table.indicator)
	}
	sort.Strings(ds.indicators)
	return ds
}

// Source returns the identity of the file the dataset was loaded from.
func (d *Dataset) Source() Identity {
	return d.source
}

// Table returns the table for indicator.
func (d *Dataset) Table(indicator string) (*IndicatorTable, bool) {
	table, ok := d.tables[indicator]
	return table, ok
}

// Indicators returns the indicator codes, ascending.
func (d *Dataset) Indicators() []string {
	indicators := make([]string, len(d.indicators))
	copy(indicators, d.indicators)
	return indicators
}

// Len returns the number of indicator tables.
func (d *Dataset) Len() int {
	return len(d.indicators)
}

// Countries returns the union of countries across all tables, ascending.
func (d *Dataset) Countries() []string {
	seen := make(map[string]struct{})
	for _, table := range d.tables {
		for _, row := range table.rows {
			seen[row.Country] = struct{}{}
		}
	}
	countries := make([]string, 0, len(seen))
	for country := range seen {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// Years returns the union of year columns across all tables, ascending.
func (d *Dataset) Years() []int {
	seen := make(map[int]struct{})
	for _, table := range d.tables {
		for _, year := range table.years {
			seen[year] = struct{}{}
		}
	}
	return sortedYears(seen)
}

// RegionOf returns the region label of country, taken from the first table
// in indicator order that lists it.
func (d *Dataset) RegionOf(country string) (string, bool) {
	for _, indicator := range d.indicators {
		if row, ok := d.tables[indicator].Row(country); ok {
			return row.RegionLabel, true
		}
	}
	return "", false
}

func sortedYears(set map[int]struct{}) []int {
	years := make([]int, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
