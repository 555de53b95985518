// Package coverage derives ready-to-plot views from a loaded dataset: time
// series, cross-country snapshots, extremes, dropout rates and scorecards.
//
// Every function is pure. Values outside [0, 100] are treated as unknown, the
// same as blank cells: they are skipped, never clamped or replaced.
package coverage

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
)

const (
	// DefaultFirstDose and DefaultLaterDose form the dose pair used for
	// dropout when the caller does not choose one.
	DefaultFirstDose = "DTP1"
	DefaultLaterDose = "DTP3"

	// Dropout rates outside this band are discarded as source-data noise.
	MinPlausibleDropout = -100.0
	MaxPlausibleDropout = 100.0
)

// Point is one year of a time series.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Entry pairs a country with a value.
type Entry struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Snapshot maps country to coverage for one indicator and year.
type Snapshot map[string]float64

// Entries returns the snapshot ordered by country name.
func (s Snapshot) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for country, value := range s {
		entries = append(entries, Entry{Country: country, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Country < entries[j].Country
	})
	return entries
}

// Extremes holds the highest and lowest entries of a snapshot.
type Extremes struct {
	Max Entry `json:"max"`
	Min Entry `json:"min"`
}

// ScorecardRow compares one country against the cross-country average for
// an indicator. Reporting is the number of countries the average covers.
type ScorecardRow struct {
	Indicator           string  `json:"indicator"`
	CountryValue        float64 `json:"countryValue"`
	CrossCountryAverage float64 `json:"crossCountryAverage"`
	Reporting           int     `json:"reporting"`
}

func valid(v float64) bool {
	return v >= 0 && v <= 100
}

func lookup(ds *dataset.Dataset, indicator string) (*dataset.IndicatorTable, error) {
	table, ok := ds.Table(indicator)
	if !ok {
		return nil, &UnknownIndicatorError{Indicator: indicator}
	}
	return table, nil
}

// TimeSeries returns the recorded (year, value) pairs of country for
// indicator, years ascending. A country with no values yields an empty series.
func TimeSeries(ds *dataset.Dataset, indicator, country string, opts ...Option) ([]Point, error) {
	table, err := lookup(ds, indicator)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	row, ok := table.Row(country)
	if !ok || !o.includes(country) {
		return nil, &UnknownCountryError{Indicator: indicator, Country: country}
	}

	years := row.Years()
	series := make([]Point, 0, len(years))
	for _, year := range years {
		value, _ := row.Value(year)
		if !valid(value) {
			continue
		}
		series = append(series, Point{Year: year, Value: value})
	}
	return series, nil
}

// SnapshotOf returns every country with a value for indicator at year.
// Countries without a usable value are left out, not reported as zero.
func SnapshotOf(ds *dataset.Dataset, indicator string, year int, opts ...Option) (Snapshot, error) {
	table, err := lookup(ds, indicator)
	if err != nil {
		return nil, err
	}
	return snapshot(table, year, buildOptions(opts)), nil
}

func snapshot(table *dataset.IndicatorTable, year int, o options) Snapshot {
	snap := make(Snapshot)
	for _, row := range table.Rows() {
		if !o.includes(row.Country) {
			continue
		}
		if value, ok := row.Value(year); ok && valid(value) {
			snap[row.Country] = value
		}
	}
	return snap
}

// FindExtremes returns the highest and lowest entries of snap. Ties go to
// the country that sorts first by name, so repeated calls agree.
func FindExtremes(snap Snapshot) (Extremes, error) {
	if len(snap) == 0 {
		return Extremes{}, &EmptySnapshotError{}
	}

	entries := snap.Entries()
	ext := Extremes{Max: entries[0], Min: entries[0]}
	for _, e := range entries[1:] {
		if e.Value > ext.Max.Value {
			ext.Max = e
		}
		if e.Value < ext.Min.Value {
			ext.Min = e
		}
	}
	return ext, nil
}

// Rank orders a snapshot by value descending, ties by country name.
func Rank(snap Snapshot) []Entry {
	entries := snap.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// DropoutRate computes (first - later) / first * 100 for every country with
// usable values in both indicators at year. Countries with a zero first dose
// and rates outside [MinPlausibleDropout, MaxPlausibleDropout] are excluded.
func DropoutRate(ds *dataset.Dataset, firstDose, laterDose string, year int, opts ...Option) (Snapshot, error) {
	first, err := lookup(ds, firstDose)
	if err != nil {
		return nil, err
	}
	later, err := lookup(ds, laterDose)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	firstSnap := snapshot(first, year, o)
	laterSnap := snapshot(later, year, o)

	rates := make(Snapshot)
	for country, d1 := range firstSnap {
		d3, ok := laterSnap[country]
		if !ok || d1 == 0 {
			continue
		}
		rate := (d1 - d3) / d1 * 100
		if rate < MinPlausibleDropout || rate > MaxPlausibleDropout {
			continue
		}
		rates[country] = rate
	}
	return rates, nil
}

// Scorecard compares country against the cross-country average at year for
// every indicator where the country has a usable value. Rows are ordered by
// average descending, ties by indicator code. A country absent from every
// table yields an empty scorecard.
func Scorecard(ds *dataset.Dataset, country string, year int, opts ...Option) []ScorecardRow {
	o := buildOptions(opts)
	rows := make([]ScorecardRow, 0, ds.Len())

	for _, indicator := range ds.Indicators() {
		table, _ := ds.Table(indicator)

		row, ok := table.Row(country)
		if !ok {
			continue
		}
		value, ok := row.Value(year)
		if !ok || !valid(value) {
			continue
		}

		snap := snapshot(table, year, o)
		values := make(stats.Float64Data, 0, len(snap))
		for _, v := range snap {
			values = append(values, v)
		}
		// Fixed summation order keeps the average stable across calls.
		sort.Float64s(values)
		avg, err := stats.Mean(values)
		if err != nil {
			// Only possible when the filter excludes every reporting country.
			continue
		}

		rows = append(rows, ScorecardRow{
			Indicator:           indicator,
			CountryValue:        value,
			CrossCountryAverage: avg,
			Reporting:           len(values),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CrossCountryAverage != rows[j].CrossCountryAverage {
			return rows[i].CrossCountryAverage > rows[j].CrossCountryAverage
		}
		return rows[i].Indicator < rows[j].Indicator
	})
	return rows
}
