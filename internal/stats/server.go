package stats

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

const (
	defaultHistoryHours = 24
	maxHistoryHours     = 24 * 30
)

// Server exposes the dashboard endpoints: the cached snapshot per coin and
// sampled history out of ClickHouse.
type Server struct {
	store  SampleStore
	cache  SnapshotCache
	logger *zap.Logger
}

func NewServer(store SampleStore, cache SnapshotCache, logger *zap.Logger) *Server {
	return &Server{store: store, cache: cache, logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/pool/{coin}", s.handlePool)
	mux.HandleFunc("GET /api/pool/{coin}/history", s.handleHistory)

	return cors.Default().Handler(mux)
}

// Serve blocks until the context ends, then shuts the server down.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("stats server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePool serves the cached snapshot, falling back to the newest stored
// sample when the cache is cold.
func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	coin, ok := coinFromPath(w, r)
	if !ok {
		return
	}

	snap, err := s.cache.GetSnapshot(r.Context(), coin.String())
	if err != nil {
		s.logger.Warn("snapshot cache read failed", zap.String("coin", coin.String()), zap.Error(err))
	}
	if snap != nil {
		writeJSON(w, http.StatusOK, snap)
		return
	}

	sample, err := s.store.LatestPoolSample(r.Context(), coin.String())
	if err != nil {
		s.logger.Error("latest sample query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "sample query failed")
		return
	}
	if sample == nil {
		writeError(w, http.StatusNotFound, "no samples for coin")
		return
	}
	writeJSON(w, http.StatusOK, Snapshot{
		Coin:      coin.String(),
		Online:    false,
		UpdatedAt: sample.SampledAt,
		Pool:      *sample,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	coin, ok := coinFromPath(w, r)
	if !ok {
		return
	}

	hours := defaultHistoryHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	if hours > maxHistoryHours {
		hours = maxHistoryHours
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	samples, err := s.store.PoolHistory(r.Context(), coin.String(), since)
	if err != nil {
		s.logger.Error("history query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "history query failed")
		return
	}
	writeJSON(w, http.StatusOK, samples)
}

func coinFromPath(w http.ResponseWriter, r *http.Request) (model.Coin, bool) {
	coin, err := model.ParseCoin(r.PathValue("coin"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return coin, true
}
