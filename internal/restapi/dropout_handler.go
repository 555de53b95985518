package restapi

import (
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
)

// dropoutHandler serves (first - later) / first * 100 per country. The dose
// pair defaults to DTP1 and DTP3.
func (api *RestAPI) dropoutHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()
	first := params.Get("first")
	if first == "" {
		first = coverage.DefaultFirstDose
	}
	later := params.Get("later")
	if later == "" {
		later = coverage.DefaultLaterDose
	}

	fieldErrors := make(map[string][]string)
	first, fieldErrors = parseIndicator(first, "first", fieldErrors)
	later, fieldErrors = parseIndicator(later, "later", fieldErrors)
	year, fieldErrors := parseYear(ds, params, fieldErrors)
	preset, filter, fieldErrors := api.parsePreset(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rates, err := coverage.DropoutRate(ds, first, later, year, filter)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	ranking := models.NewRanking(rates, year, preset)
	ranking.First = first
	ranking.Later = later

	references := models.NewEmptyReferences()
	references.AddIndicator(api.indicatorModel(first))
	references.AddIndicator(api.indicatorModel(later))

	api.sendResponse(w, r, models.NewEntryResponse(ranking, references))
}
