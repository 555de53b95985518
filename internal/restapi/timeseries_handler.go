package restapi

import (
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/coverage"
	"github.com/YnHaddad/MSBA382Dash/internal/models"
	"github.com/YnHaddad/MSBA382Dash/internal/utils"
)

func (api *RestAPI) timeSeriesHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	fieldErrors := make(map[string][]string)
	indicator, fieldErrors := parseIndicator(utils.ExtractIDFromParams(r, "indicator"), "indicator", fieldErrors)
	country, fieldErrors := parseCountry(r.URL.Query(), fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	points, err := coverage.TimeSeries(ds, indicator, country)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	label, _ := ds.RegionOf(country)
	references := models.NewEmptyReferences()
	references.AddIndicator(api.indicatorModel(indicator))

	api.sendResponse(w, r, models.NewEntryResponse(models.TimeSeries{
		Indicator: indicator,
		Country:   country,
		Region:    label,
		Points:    points,
	}, references))
}
