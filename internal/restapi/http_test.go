package restapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YnHaddad/MSBA382Dash/internal/app"
	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
	"github.com/YnHaddad/MSBA382Dash/internal/catalog"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset/datasettest"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
	"github.com/YnHaddad/MSBA382Dash/internal/wuenic"
)

// createTestApi creates a new RestAPI serving the sample workbook.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithConfig(t, appconf.Config{
		Env:       appconf.EnvFlagToEnvironment("test"),
		RateLimit: 1000,
	})
}

func createTestApiWithConfig(t *testing.T, config appconf.Config) *RestAPI {
	t.Helper()

	datasetConfig := wuenic.Config{
		SourcePath: datasettest.WriteSample(t, t.TempDir()),
		Env:        config.Env,
	}
	manager, err := wuenic.InitManager(context.Background(), datasetConfig, nil, nil)
	require.NoError(t, err)

	application := &app.Application{
		Config:        config,
		DatasetConfig: datasetConfig,
		Logger:        logging.Discard(),
		Manager:       manager,
		Catalog:       catalog.Default(),
		Regions:       region.Default(),
	}

	api := NewRestAPI(application)
	t.Cleanup(func() {
		api.Shutdown()
		manager.Shutdown()
	})
	return api
}

// serveApiAndRetrieveEndpoint sends one request through the full middleware
// stack and decodes the JSON body.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, method, endpoint string) (*http.Response, map[string]any) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	req, err := http.NewRequest(method, server.URL+endpoint, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func getEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string]any) {
	t.Helper()
	return serveApiAndRetrieveEndpoint(t, api, http.MethodGet, endpoint)
}

// entryOf returns data.entry of a successful envelope.
func entryOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]any)
	require.True(t, ok, "data.entry should be an object")
	return entry
}

// listOf returns data.list of a successful envelope.
func listOf(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]any)
	require.True(t, ok, "data.list should be an array")
	return list
}
