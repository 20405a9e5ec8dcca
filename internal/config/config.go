// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultMetricsURL is the per-category metrics endpoint used when nothing else is configured.
	DefaultMetricsURL = "http://localhost:8080/api/metrics"
	// DefaultAllMetricsURL is the bulk endpoint used when nothing else is configured.
	DefaultAllMetricsURL = DefaultMetricsURL + "/getAllMetrics"
)

// DashboardConfig holds the configuration settings for the dashboard data layer.
// It is resolved once at startup and shared read-only afterwards.
type DashboardConfig struct {
	MetricsURL    string // Base URL for per-category requests
	AllMetricsURL string // Bulk endpoint; empty disables the bulk request
	ServerAddr    string // Listen address of the dashboard service
	ClientTimeout int    // HTTP client timeout (in seconds), 0 means none
	LogLevel      string // zap level name
	Logger        *zap.SugaredLogger
}

// Flags collects command-line overrides for DashboardConfig.
type Flags struct {
	metricsURL strFlag
	allURL     strFlag
	addr       strFlag
	timeout    intFlag
	logLevel   strFlag
	conf       strFlag
}

// Register binds the override flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.Var(&f.metricsURL, "url", "base metrics URL")
	fs.Var(&f.allURL, "all-url", "bulk all-metrics URL (empty disables the bulk request)")
	fs.Var(&f.addr, "a", "dashboard HTTP server address")
	fs.Var(&f.timeout, "timeout", "client timeout (seconds)")
	fs.Var(&f.logLevel, "log-level", "log level")
	fs.Var(&f.conf, "c", "Path to JSON config file")
	fs.Var(&f.conf, "config", "Path to JSON config file (alias)")
}

// Resolve builds the configuration: defaults, then the JSON file, then flags, then environment.
func (f *Flags) Resolve() *DashboardConfig {
	cfg := &DashboardConfig{
		MetricsURL:    DefaultMetricsURL,
		AllMetricsURL: DefaultAllMetricsURL,
		ServerAddr:    "localhost:8081",
		LogLevel:      "info",
	}

	if f.conf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			f.conf.v = v
		}
	}
	if f.conf.v != "" {
		js, err := loadDashboardJSON(f.conf.v)
		if err != nil {
			log.Printf("failed to load config file %s: %v", f.conf.v, err)
		} else {
			applyDashboardJSON(cfg, js)
		}
	}

	if f.metricsURL.set {
		cfg.MetricsURL = f.metricsURL.v
	}
	if f.allURL.set {
		cfg.AllMetricsURL = f.allURL.v
	}
	if f.addr.set {
		cfg.ServerAddr = f.addr.v
	}
	if f.timeout.set {
		cfg.ClientTimeout = f.timeout.v
	}
	if f.logLevel.set {
		cfg.LogLevel = f.logLevel.v
	}

	readDashboardEnvironment(cfg)

	cfg.Logger = NewLogger(cfg.LogLevel)
	return cfg
}

// NewDashboardConfig creates and returns a new DashboardConfig by parsing flags and environment variables.
func NewDashboardConfig() *DashboardConfig {
	var f Flags
	f.Register(flag.CommandLine)
	flag.Parse()
	return f.Resolve()
}

// ParseDashboardConfig is NewDashboardConfig over an explicit argument list.
func ParseDashboardConfig(name string, args []string) (*DashboardConfig, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f.Resolve(), nil
}

// NewLogger builds a production zap logger at the named level, falling back to info.
func NewLogger(level string) *zap.SugaredLogger {
	logCfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Printf("invalid log level %q: %v", level, err)
		lvl = zapcore.InfoLevel
	}
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stderr"}
	return zap.Must(logCfg.Build()).Sugar()
}

func readDashboardEnvironment(cfg *DashboardConfig) {
	if u := os.Getenv("METRICS_URL"); u != "" {
		cfg.MetricsURL = u
	}

	// set-but-empty turns the bulk request off
	if u, ok := os.LookupEnv("ALL_METRICS_URL"); ok {
		cfg.AllMetricsURL = u
	}

	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.ServerAddr = addr
	}

	timeoutEnv := os.Getenv("CLIENT_TIMEOUT")
	if timeoutEnv != "" {
		v, err := strconv.Atoi(timeoutEnv)
		if err == nil {
			cfg.ClientTimeout = v
		} else {
			log.Printf("invalid CLIENT_TIMEOUT env var: %v", err)
		}
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
}
