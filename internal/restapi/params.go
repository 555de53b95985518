package restapi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
	"github.com/YnHaddad/MSBA382Dash/internal/utils"
)

// currentDataset loads the snapshot once for the request, answering 503
// itself when nothing is loaded.
func (api *RestAPI) currentDataset(w http.ResponseWriter, r *http.Request) (*dataset.Dataset, bool) {
	if api.Manager == nil {
		api.unavailableResponse(w, r)
		return nil, false
	}
	ds := api.Manager.Dataset()
	if ds == nil {
		api.unavailableResponse(w, r)
		return nil, false
	}
	return ds, true
}

// parseYear reads the year parameter, defaulting to the newest year in ds.
func parseYear(ds *dataset.Dataset, params url.Values, fieldErrors map[string][]string) (int, map[string][]string) {
	latest := 0
	if years := ds.Years(); len(years) > 0 {
		latest = years[len(years)-1]
	}
	return utils.ParseYearParam(params, "year", latest, fieldErrors)
}

// parsePreset resolves the preset parameter into a country filter.
func (api *RestAPI) parsePreset(params url.Values, fieldErrors map[string][]string) (string, coverage.Option, map[string][]string) {
	name := params.Get("preset")
	if name == "" {
		name = catalog.PresetGlobal
	}
	opt, ok := api.CountryFilter(name)
	if !ok {
		fieldErrors["preset"] = append(fieldErrors["preset"], fmt.Sprintf("Unknown preset %q.", name))
	}
	return name, opt, fieldErrors
}

func parseIndicator(value, key string, fieldErrors map[string][]string) (string, map[string][]string) {
	if err := utils.ValidateIndicator(value); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
	}
	return value, fieldErrors
}

func parseCountry(params url.Values, fieldErrors map[string][]string) (string, map[string][]string) {
	country, fieldErrors := utils.RequiredParam(params, "country", fieldErrors)
	if country == "" {
		return country, fieldErrors
	}
	country = utils.SanitizeInput(country)
	if err := utils.ValidateCountry(country); err != nil {
		fieldErrors["country"] = append(fieldErrors["country"], err.Error())
	}
	return country, fieldErrors
}

func (api *RestAPI) indicatorModel(code string) models.Indicator {
	return models.Indicator{Code: code, Label: api.Catalog.VaccineLabel(code)}
}
