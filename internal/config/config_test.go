package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var dashboardEnv = []string{"METRICS_URL", "ALL_METRICS_URL", "ADDRESS", "CLIENT_TIMEOUT", "LOG_LEVEL", "CONFIG"}

func setEnvAndRun(t *testing.T, env map[string]string, fn func()) {
	t.Helper()

	type saved struct {
		v  string
		ok bool
	}
	backup := map[string]saved{}
	for _, k := range dashboardEnv {
		v, ok := os.LookupEnv(k)
		backup[k] = saved{v, ok}
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
	defer func() {
		for k, old := range backup {
			_ = os.Unsetenv(k)
			if old.ok {
				_ = os.Setenv(k, old.v)
			}
		}
	}()

	fn()
}

func TestResolve_Defaults(t *testing.T) {
	setEnvAndRun(t, nil, func() {
		cfg, err := ParseDashboardConfig("test", nil)
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8080/api/metrics", cfg.MetricsURL)
		require.Equal(t, "http://localhost:8080/api/metrics/getAllMetrics", cfg.AllMetricsURL)
		require.Equal(t, "localhost:8081", cfg.ServerAddr)
		require.Equal(t, 0, cfg.ClientTimeout)
		require.NotNil(t, cfg.Logger)
	})
}

func TestReadDashboardEnvironment(t *testing.T) {
	env := map[string]string{
		"METRICS_URL":     "http://backend/api/metrics",
		"ALL_METRICS_URL": "http://backend/all",
		"ADDRESS":         "0.0.0.0:9090",
		"CLIENT_TIMEOUT":  "5",
		"LOG_LEVEL":       "debug",
	}
	setEnvAndRun(t, env, func() {
		cfg := &DashboardConfig{}
		readDashboardEnvironment(cfg)
		require.Equal(t, "http://backend/api/metrics", cfg.MetricsURL)
		require.Equal(t, "http://backend/all", cfg.AllMetricsURL)
		require.Equal(t, "0.0.0.0:9090", cfg.ServerAddr)
		require.Equal(t, 5, cfg.ClientTimeout)
		require.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestReadDashboardEnvironment_Invalid(t *testing.T) {
	env := map[string]string{"CLIENT_TIMEOUT": "bad"}
	setEnvAndRun(t, env, func() {
		cfg := &DashboardConfig{ClientTimeout: 3}
		readDashboardEnvironment(cfg)
		require.Equal(t, 3, cfg.ClientTimeout)
	})
}

func TestReadDashboardEnvironment_EmptyAllURLDisablesBulk(t *testing.T) {
	setEnvAndRun(t, map[string]string{"ALL_METRICS_URL": ""}, func() {
		cfg := &DashboardConfig{AllMetricsURL: DefaultAllMetricsURL}
		readDashboardEnvironment(cfg)
		require.Empty(t, cfg.AllMetricsURL)
	})
}

func TestResolve_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	js := `{"metrics_url":"http://json/api/metrics","address":"json:1","client_timeout":"7s","log_level":"warn"}`
	require.NoError(t, os.WriteFile(path, []byte(js), 0o600))

	setEnvAndRun(t, map[string]string{"ADDRESS": "env:3"}, func() {
		cfg, err := ParseDashboardConfig("test", []string{"-c", path, "-timeout", "2", "-a", "flag:2"})
		require.NoError(t, err)

		require.Equal(t, "http://json/api/metrics", cfg.MetricsURL)
		require.Equal(t, DefaultAllMetricsURL, cfg.AllMetricsURL)
		require.Equal(t, 2, cfg.ClientTimeout)
		require.Equal(t, "env:3", cfg.ServerAddr)
		require.Equal(t, "warn", cfg.LogLevel)
	})
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5s", 5},
		{"500ms", 1},
		{"1500ms", 2},
		{"0s", 0},
		{"-3s", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDurationSeconds(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := parseDurationSeconds("soon")
	require.Error(t, err)
}

func TestResolve_SubSecondJSONTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_timeout":"500ms"}`), 0o600))

	setEnvAndRun(t, nil, func() {
		cfg, err := ParseDashboardConfig("test", []string{"-c", path})
		require.NoError(t, err)
		require.Equal(t, 1, cfg.ClientTimeout)
	})
}

func TestResolve_MissingConfigFileIgnored(t *testing.T) {
	setEnvAndRun(t, map[string]string{"CONFIG": "/nonexistent/dashboard.json"}, func() {
		cfg, err := ParseDashboardConfig("test", nil)
		require.NoError(t, err)
		require.Equal(t, DefaultMetricsURL, cfg.MetricsURL)
	})
}

func TestParseDashboardConfig_BadFlag(t *testing.T) {
	_, err := ParseDashboardConfig("test", []string{"-timeout", "soon"})
	require.Error(t, err)
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	l := NewLogger("loud")
	require.NotNil(t, l)
	require.True(t, l.Desugar().Core().Enabled(0))
}
