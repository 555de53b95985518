package restapi

import (
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/models"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	codes := ds.Indicators()
	list := make([]models.Indicator, 0, len(codes))
	for _, code := range codes {
		list = append(list, api.indicatorModel(code))
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}

	preset := r.URL.Query().Get("preset")
	members, ok := api.Catalog.Preset(preset)
	if !ok {
		api.validationErrorResponse(w, r, map[string][]string{
			"preset": {"Unknown preset \"" + preset + "\"."},
		})
		return
	}

	var include map[string]bool
	if members != nil {
		include = make(map[string]bool, len(members))
		for _, name := range members {
			include[name] = true
		}
	}

	references := models.NewEmptyReferences()
	list := make([]models.Country, 0)
	for _, name := range ds.Countries() {
		if include != nil && !include[name] {
			continue
		}
		label, _ := ds.RegionOf(name)
		list = append(list, models.Country{
			Name:    name,
			Region:  label,
			MapName: api.Catalog.MapName(name),
		})
		references.AddRegion(models.Region{Label: label})
	}

	api.sendResponse(w, r, models.NewListResponse(list, references))
}

func (api *RestAPI) yearsHandler(w http.ResponseWriter, r *http.Request) {
	ds, ok := api.currentDataset(w, r)
	if !ok {
		return
	}
	api.sendResponse(w, r, models.NewListResponse(ds.Years(), models.NewEmptyReferences()))
}

func (api *RestAPI) regionsHandler(w http.ResponseWriter, r *http.Request) {
	codes := api.Regions.Codes()
	list := make([]models.Region, 0, len(codes)+1)
	for _, code := range codes {
		list = append(list, models.Region{Code: code, Label: api.Regions.Resolve(code)})
	}
	list = append(list, models.Region{Label: region.Fallback})

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}
