package restapi

import (
	"time"

	"github.com/YnHaddad/MSBA382Dash/internal/app"
	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	app.Logger = logging.OrDiscard(app.Logger)
	if app.Catalog == nil {
		app.Catalog = catalog.Default()
	}
	if app.Regions == nil {
		app.Regions = region.Default()
	}
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
