package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/metrics-dashboard/internal/buildinfo"
	"github.com/and161185/metrics-dashboard/internal/client"
	"github.com/and161185/metrics-dashboard/internal/config"
	"github.com/and161185/metrics-dashboard/internal/server"
)

func main() {
	buildinfo.PrintBuildInfo(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewDashboardConfig()
	defer func() { _ = config.Logger.Sync() }()

	config.Logger.Infof("Dashboard config: Addr=%s, MetricsURL=%s, AllMetricsURL=%q, ClientTimeout=%d",
		config.ServerAddr,
		config.MetricsURL,
		config.AllMetricsURL,
		config.ClientTimeout,
	)

	srv := server.NewServer(client.NewClient(config), config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
