package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	file       string
	format     string
	preset     string
	verbose    bool
}

// session is what a subcommand works against once flags are resolved.
type session struct {
	ds      *dataset.Dataset
	catalog *catalog.Catalog
	preset  string
	filter  coverage.Option
	format  format
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "coverage",
		Short:         "Query WHO/UNICEF immunization coverage estimates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config with labels, aliases, presets and regions")
	flags.StringVarP(&opts.file, "file", "f", "", "coverage workbook (default from config or "+appconf.EnvSource+")")
	flags.StringVarP(&opts.format, "format", "o", string(formatText), "output format: text, json or csv")
	flags.StringVarP(&opts.preset, "preset", "p", catalog.PresetGlobal, "country preset to restrict results to")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log loader diagnostics to stderr")

	root.AddCommand(
		newIndicatorsCommand(opts),
		newCountriesCommand(opts),
		newTimeSeriesCommand(opts),
		newSnapshotCommand(opts),
		newDropoutCommand(opts),
		newScorecardCommand(opts),
	)
	return root
}

// open resolves configuration, loads the workbook and builds the country
// filter for the selected preset.
func (opts *globalOptions) open() (*session, error) {
	out, err := parseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	cfg, err := appconf.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.file != "" {
		cfg.SourcePath = opts.file
	}

	logger := logging.Discard()
	if opts.verbose {
		logger = logging.NewStructuredLogger(os.Stderr, slog.LevelDebug)
	}

	cat := catalog.New(catalog.Overrides{
		Labels:  cfg.Labels,
		Aliases: cfg.Aliases,
		Presets: cfg.Presets,
	})
	countries, ok := cat.Preset(opts.preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (known: %v)", opts.preset, cat.PresetNames())
	}

	regions := region.NewResolver(cfg.Regions)
	ds, err := dataset.NewLoader(regions, logger).Load(cfg.SourcePath)
	if err != nil {
		return nil, err
	}

	return &session{
		ds:      ds,
		catalog: cat,
		preset:  opts.preset,
		filter:  coverage.WithCountries(countries...),
		format:  out,
	}, nil
}

// yearOrLatest returns year, or the newest year in the dataset when year
// is zero.
func (s *session) yearOrLatest(year int) (int, error) {
	if year != 0 {
		return year, nil
	}
	years := s.ds.Years()
	if len(years) == 0 {
		return 0, fmt.Errorf("dataset has no year columns")
	}
	return years[len(years)-1], nil
}
