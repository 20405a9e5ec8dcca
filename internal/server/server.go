// Package server exposes normalized, styled metric cards to the dashboard UI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/metrics-dashboard/internal/client"
	"github.com/and161185/metrics-dashboard/internal/config"
	"github.com/and161185/metrics-dashboard/internal/server/middleware"
	"github.com/and161185/metrics-dashboard/internal/style"
	"github.com/and161185/metrics-dashboard/model"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Source is the metrics client the server reads cards from.
type Source interface {
	FetchMetricsByType(ctx context.Context, typeCarte model.CardType) (model.Card, error)
	FetchAllMetrics(ctx context.Context) []model.Card
	FetchMetrics(ctx context.Context) (model.Card, error)
}

type Server struct {
	Source Source
	Config *config.DashboardConfig
}

func NewServer(source Source, config *config.DashboardConfig) *Server {
	return &Server{
		Source: source,
		Config: config,
	}
}

func (srv *Server) logger() *zap.SugaredLogger {
	if srv.Config == nil || srv.Config.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return srv.Config.Logger
}

// Router builds the HTTP handler with all routes and middleware.
func (srv *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.logger()))
	router.Use(middleware.CompressMiddleware)

	router.Get("/ping", srv.PingHandler)
	router.Get("/cards", srv.ListCardsHandler)
	router.Get("/cards/{typeCarte}", srv.GetCardHandler)
	router.Get("/metrics", srv.LegacyMetricsHandler)
	router.Get("/styles/{name}", srv.GetStyleHandler)
	return router
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              srv.Config.ServerAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) ListCardsHandler(w http.ResponseWriter, r *http.Request) {
	cards := srv.Source.FetchAllMetrics(r.Context())
	srv.writeJSON(w, style.DecorateCards(cards))
}

func (srv *Server) GetCardHandler(w http.ResponseWriter, r *http.Request) {
	typeCarte, err := model.ParseCardType(chi.URLParam(r, "typeCarte"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card, err := srv.Source.FetchMetricsByType(r.Context(), typeCarte)
	if err != nil {
		srv.upstreamError(w, err, "typeCarte", string(typeCarte))
		return
	}
	srv.writeJSON(w, style.DecorateCard(card))
}

func (srv *Server) LegacyMetricsHandler(w http.ResponseWriter, r *http.Request) {
	card, err := srv.Source.FetchMetrics(r.Context())
	if err != nil {
		srv.upstreamError(w, err)
		return
	}
	srv.writeJSON(w, style.DecorateCard(card))
}

func (srv *Server) GetStyleHandler(w http.ResponseWriter, r *http.Request) {
	srv.writeJSON(w, style.ResolveMetricStyle(chi.URLParam(r, "name")))
}

func (srv *Server) upstreamError(w http.ResponseWriter, err error, keysAndValues ...any) {
	srv.logger().Errorw("upstream metrics request failed", append(keysAndValues, "error", err)...)

	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		http.Error(w, reqErr.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, "metrics backend unavailable", http.StatusBadGateway)
}

func (srv *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.logger().Errorw("failed to write response JSON", "error", err)
	}
}
