package appconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coverage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"test", Test},
		{"TESTING", Test},
		{"production", Production},
		{" prod ", Production},
		{"development", Development},
		{"", Development},
		{"staging", Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFlagToEnvironment(tt.in))
		})
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: production
source: /data/wuenic.xlsx
watch: false
poll_interval: 30s
labels:
  DTP1: First DTP dose
presets:
  gulf: [Oman, Qatar]
regions:
  XX: Somewhere
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, "/data/wuenic.xlsx", cfg.SourcePath)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "First DTP dose", cfg.Labels["DTP1"])
	assert.Equal(t, []string{"Oman", "Qatar"}, cfg.Presets["gulf"])
	assert.Equal(t, "Somewhere", cfg.Regions["XX"])
	assert.Equal(t, 100, cfg.RateLimit, "unset keys keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "port: 8080\nsource: from-file.xlsx\n")
	t.Setenv(EnvSource, "from-env.xlsx")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvEnv, "test")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.xlsx", cfg.SourcePath)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "port: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("bad port env", func(t *testing.T) {
		t.Setenv(EnvPort, "eighty")
		_, err := Load("")
		assert.ErrorContains(t, err, EnvPort)
	})

	t.Run("port out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "port: 70000\n"))
		assert.ErrorContains(t, err, "port")
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := Load(writeConfig(t, "source: \"\"\n"))
		assert.ErrorContains(t, err, "source")
	})
}
