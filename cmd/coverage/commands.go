package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
)

func newIndicatorsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "List the indicators in the workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			t := table{header: []string{"code", "label", "countries"}}
			indicators := make([]models.Indicator, 0, s.ds.Len())
			for _, code := range s.ds.Indicators() {
				tbl, _ := s.ds.Table(code)
				indicator := models.Indicator{Code: code, Label: s.catalog.VaccineLabel(code)}
				indicators = append(indicators, indicator)
				t.add(indicator.Code, indicator.Label, strconv.Itoa(tbl.Len()))
			}
			t.value = indicators
			return render(cmd.OutOrStdout(), s.format, t)
		},
	}
}

func newCountriesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries in the selected preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			allowed, _ := s.catalog.Preset(s.preset)
			include := make(map[string]bool, len(allowed))
			for _, name := range allowed {
				include[name] = true
			}

			t := table{header: []string{"name", "region", "mapName"}}
			countries := make([]models.Country, 0)
			for _, name := range s.ds.Countries() {
				if len(include) > 0 && !include[name] {
					continue
				}
				regionLabel, _ := s.ds.RegionOf(name)
				country := models.Country{Name: name, Region: regionLabel, MapName: s.catalog.MapName(name)}
				countries = append(countries, country)
				t.add(country.Name, country.Region, country.MapName)
			}
			t.value = countries
			return render(cmd.OutOrStdout(), s.format, t)
		},
	}
}

func newTimeSeriesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "timeseries INDICATOR COUNTRY",
		Short: "Print one country's coverage for an indicator over time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			indicator, country := args[0], args[1]
			points, err := coverage.TimeSeries(s.ds, indicator, country, s.filter)
			if err != nil {
				return err
			}
			regionLabel, _ := s.ds.RegionOf(country)

			t := table{header: []string{"year", "value"}}
			for _, p := range points {
				t.add(strconv.Itoa(p.Year), formatValue(p.Value))
			}
			t.value = models.TimeSeries{
				Indicator: indicator,
				Country:   country,
				Region:    regionLabel,
				Points:    points,
			}
			return render(cmd.OutOrStdout(), s.format, t)
		},
	}
}

func newSnapshotCommand(opts *globalOptions) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "snapshot INDICATOR",
		Short: "Rank countries by coverage for one indicator and year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			y, err := s.yearOrLatest(year)
			if err != nil {
				return err
			}
			snap, err := coverage.SnapshotOf(s.ds, args[0], y, s.filter)
			if err != nil {
				return err
			}
			ranking := models.NewRanking(snap, y, s.preset)
			ranking.Indicator = args[0]
			return render(cmd.OutOrStdout(), s.format, rankingTable(ranking))
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to report (default latest)")
	return cmd
}

func newDropoutCommand(opts *globalOptions) *cobra.Command {
	var (
		year  int
		first string
		later string
	)
	cmd := &cobra.Command{
		Use:   "dropout",
		Short: "Rank countries by dropout between two doses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			y, err := s.yearOrLatest(year)
			if err != nil {
				return err
			}
			rates, err := coverage.DropoutRate(s.ds, first, later, y, s.filter)
			if err != nil {
				return err
			}
			ranking := models.NewRanking(rates, y, s.preset)
			ranking.First, ranking.Later = first, later
			return render(cmd.OutOrStdout(), s.format, rankingTable(ranking))
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to report (default latest)")
	cmd.Flags().StringVar(&first, "first", coverage.DefaultFirstDose, "first-dose indicator")
	cmd.Flags().StringVar(&later, "later", coverage.DefaultLaterDose, "later-dose indicator")
	return cmd
}

func newScorecardCommand(opts *globalOptions) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "scorecard COUNTRY",
		Short: "Compare a country against the cross-country average",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			y, err := s.yearOrLatest(year)
			if err != nil {
				return err
			}
			country := args[0]
			regionLabel, ok := s.ds.RegionOf(country)
			if !ok {
				return &coverage.UnknownCountryError{Country: country}
			}
			rows := coverage.Scorecard(s.ds, country, y, s.filter)

			t := table{header: []string{"indicator", "label", "country", "average", "reporting"}}
			for _, row := range rows {
				t.add(row.Indicator, s.catalog.VaccineLabel(row.Indicator),
					formatValue(row.CountryValue), formatValue(row.CrossCountryAverage),
					strconv.Itoa(row.Reporting))
			}
			t.value = models.Scorecard{
				Country: country,
				Region:  regionLabel,
				Year:    y,
				Preset:  s.preset,
				Rows:    rows,
			}
			return render(cmd.OutOrStdout(), s.format, t)
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to report (default latest)")
	return cmd
}

// rankingTable lays a ranking out with the extremes marked.
func rankingTable(ranking models.Ranking) table {
	t := table{header: []string{"rank", "country", "value", "note"}, value: ranking}
	for i, entry := range ranking.Entries {
		note := ""
		if ranking.Extremes != nil {
			switch entry.Country {
			case ranking.Extremes.Max.Country:
				note = "max"
			case ranking.Extremes.Min.Country:
				note = "min"
			}
		}
		t.add(strconv.Itoa(i+1), entry.Country, formatValue(entry.Value), note)
	}
	return t
}
