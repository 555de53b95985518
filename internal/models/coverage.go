package models

import "github.com/YnHaddad/MSBA382Dash/internal/coverage"

type Indicator struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Region struct {
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
}

type Country struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	MapName string `json:"mapName"`
}

type TimeSeries struct {
	Indicator string           `json:"indicator"`
	Country   string           `json:"country"`
	Region    string           `json:"region"`
	Points    []coverage.Point `json:"points"`
}

// Ranking is a snapshot or a dropout table: entries ordered by value
// descending, with extremes when at least one country reports.
type Ranking struct {
	Indicator string             `json:"indicator,omitempty"`
	First     string             `json:"first,omitempty"`
	Later     string             `json:"later,omitempty"`
	Year      int                `json:"year"`
	Preset    string             `json:"preset"`
	Entries   []coverage.Entry   `json:"entries"`
	Extremes  *coverage.Extremes `json:"extremes,omitempty"`
}

// NewRanking ranks snap and attaches its extremes when it is not empty.
func NewRanking(snap coverage.Snapshot, year int, preset string) Ranking {
	ranking := Ranking{
		Year:    year,
		Preset:  preset,
		Entries: coverage.Rank(snap),
	}
	if ext, err := coverage.FindExtremes(snap); err == nil {
		ranking.Extremes = &ext
	}
	return ranking
}

type Scorecard struct {
	Country string                  `json:"country"`
	Region  string                  `json:"region"`
	Year    int                     `json:"year"`
	Preset  string                  `json:"preset"`
	Rows    []coverage.ScorecardRow `json:"rows"`
}
