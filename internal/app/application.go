package app

import (
	"log/slog"

	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
	"github.com/YnHaddad/MSBA382Dash/internal/wuenic"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config        appconf.Config
	DatasetConfig wuenic.Config
	Logger        *slog.Logger
	Manager       *wuenic.Manager
	Catalog       *catalog.Catalog
	Regions       *region.Resolver
}

// CountryFilter turns a preset name into a Metric Engine option. The empty
// name and "global" select every country; ok is false for unknown presets.
func (app *Application) CountryFilter(preset string) (opt coverage.Option, ok bool) {
	countries, ok := app.Catalog.Preset(preset)
	if !ok {
		return nil, false
	}
	return coverage.WithCountries(countries...), true
}
