package config

import (
	"encoding/json"
	"os"
	"time"
)

type dashboardJSON struct {
	MetricsURL    *string `json:"metrics_url"`
	AllMetricsURL *string `json:"all_metrics_url"`
	Address       *string `json:"address"`
	ClientTimeout *string `json:"client_timeout"` // "5s"
	LogLevel      *string `json:"log_level"`
}

func loadDashboardJSON(path string) (*dashboardJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c dashboardJSON
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func applyDashboardJSON(cfg *DashboardConfig, js *dashboardJSON) {
	if js.MetricsURL != nil {
		cfg.MetricsURL = *js.MetricsURL
	}
	if js.AllMetricsURL != nil {
		cfg.AllMetricsURL = *js.AllMetricsURL
	}
	if js.Address != nil {
		cfg.ServerAddr = *js.Address
	}
	if js.ClientTimeout != nil {
		if sec, err := parseDurationSeconds(*js.ClientTimeout); err == nil {
			cfg.ClientTimeout = sec
		}
	}
	if js.LogLevel != nil {
		cfg.LogLevel = *js.LogLevel
	}
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, nil
	}
	// A positive timeout never rounds down to 0, which would disable it.
	return int((d + time.Second - 1) / time.Second), nil
}
