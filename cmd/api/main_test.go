package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset/datasettest"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
	"github.com/YnHaddad/MSBA382Dash/internal/restapi"
)

func testConfig(t *testing.T, env appconf.Environment) appconf.Config {
	cfg := appconf.DefaultConfig()
	cfg.Env = env
	cfg.Watch = false
	cfg.SourcePath = datasettest.WriteSample(t, t.TempDir())
	cfg.Presets = map[string][]string{"himalaya": {"Nepal"}}
	cfg.Regions = map[string]string{"ZZZZ": "Lost Continent"}
	return *cfg
}

func TestBuildApplicationMissingSource(t *testing.T) {
	cfg := appconf.DefaultConfig()
	cfg.SourcePath = filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := buildApplication(context.Background(), *cfg, logging.Discard())
	assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
}

func TestBuildApplicationAppliesConfig(t *testing.T) {
	application, err := buildApplication(context.Background(), testConfig(t, appconf.Test), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(application.Manager.Shutdown)

	region, ok := application.Manager.Dataset().RegionOf("Atlantis")
	require.True(t, ok)
	assert.Equal(t, "Lost Continent", region)

	countries, ok := application.Catalog.Preset("himalaya")
	require.True(t, ok)
	assert.Equal(t, []string{"Nepal"}, countries)
}

func TestRoutesMountDebugOutsideProduction(t *testing.T) {
	for _, tt := range []struct {
		env  appconf.Environment
		want int
	}{
		{appconf.Development, http.StatusOK},
		{appconf.Production, http.StatusNotFound},
	} {
		t.Run(tt.env.String(), func(t *testing.T) {
			application, err := buildApplication(context.Background(), testConfig(t, tt.env), logging.Discard())
			require.NoError(t, err)
			api := restapi.NewRestAPI(application)
			t.Cleanup(func() {
				api.Shutdown()
				application.Manager.Shutdown()
			})

			handler := routes(application, api)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/", nil))
			assert.Equal(t, tt.want, recorder.Code)

			recorder = httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot/DTP1?preset=himalaya", nil))
			require.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			entry := body["data"].(map[string]any)["entry"].(map[string]any)
			assert.Len(t, entry["entries"], 1)
		})
	}
}
