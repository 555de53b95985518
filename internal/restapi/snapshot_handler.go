package restapi

import (
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
	"github.com/YnHaddad/MSBA382Dash/internal/utils"
)

func (api *RestAPI) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()
	fieldErrors := make(map[string][]string)
	indicator, fieldErrors := parseIndicator(utils.ExtractIDFromParams(r, "indicator"), "indicator", fieldErrors)
	year, fieldErrors := parseYear(ds, params, fieldErrors)
	preset, filter, fieldErrors := api.parsePreset(params, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snap, err := coverage.SnapshotOf(ds, indicator, year, filter)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	ranking := models.NewRanking(snap, year, preset)
	ranking.Indicator = indicator

	references := models.NewEmptyReferences()
	references.AddIndicator(api.indicatorModel(indicator))

	api.sendResponse(w, r, models.NewEntryResponse(ranking, references))
}
