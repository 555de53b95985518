package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

const apiPrefix = "/api/v1"

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, apiPrefix+"/indicators", http.HandlerFunc(api.indicatorsHandler))
	router.Handler(http.MethodGet, apiPrefix+"/countries", http.HandlerFunc(api.countriesHandler))
	router.Handler(http.MethodGet, apiPrefix+"/years", http.HandlerFunc(api.yearsHandler))
	router.Handler(http.MethodGet, apiPrefix+"/regions", http.HandlerFunc(api.regionsHandler))
	router.Handler(http.MethodGet, apiPrefix+"/timeseries/:indicator", http.HandlerFunc(api.timeSeriesHandler))
	router.Handler(http.MethodGet, apiPrefix+"/snapshot/:indicator", http.HandlerFunc(api.snapshotHandler))
	router.Handler(http.MethodGet, apiPrefix+"/dropout", http.HandlerFunc(api.dropoutHandler))
	router.Handler(http.MethodGet, apiPrefix+"/scorecard", http.HandlerFunc(api.scorecardHandler))
	router.Handler(http.MethodPost, apiPrefix+"/reload", http.HandlerFunc(api.reloadHandler))
	router.Handler(http.MethodGet, "/healthz", http.HandlerFunc(api.healthHandler))

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.sendNotFound(w, r, "")
	})
}

// WithMiddleware wraps handler in the middleware every route shares:
// request logging, security headers, rate limiting and compression, outermost first.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = api.rateLimiter.Handler(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}

// Routes returns the API router wrapped in its middleware.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.WithMiddleware(router)
}
