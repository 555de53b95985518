package restapi

import (
	"fmt"
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
)

func (api *RestAPI) scorecardHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()
	fieldErrors := make(map[string][]string)
	country, fieldErrors := parseCountry(params, fieldErrors)
	year, fieldErrors := parseYear(ds, params, fieldErrors)
	preset, filter, fieldErrors := api.parsePreset(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	label, known := ds.RegionOf(country)
	if !known {
		api.sendNotFound(w, r, fmt.Sprintf("unknown country %q", country))
		return
	}

	rows := coverage.Scorecard(ds, country, year, filter)

	references := models.NewEmptyReferences()
	for _, row := range rows {
		references.AddIndicator(api.indicatorModel(row.Indicator))
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.Scorecard{
		Country: country,
		Region:  label,
		Year:    year,
		Preset:  preset,
		Rows:    rows,
	}, references))
}
