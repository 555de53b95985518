package restapi

import (
	"net/http"

	"github.com/YnHaddad/MSBA382Dash/internal/models"
)

// reloadHandler rereads the source workbook. A failed reload keeps serving
// the previous dataset and reports 500.
func (api *RestAPI) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if api.Manager == nil {
		api.unavailableResponse(w, r)
		return
	}

	if err := api.Manager.ForceReload(r.Context()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(api.Manager.Status(), models.NewEmptyReferences()))
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	if api.Manager == nil || api.Manager.Dataset() == nil {
		api.unavailableResponse(w, r)
		return
	}
	api.sendResponse(w, r, models.NewOKResponse(api.Manager.Status()))
}
