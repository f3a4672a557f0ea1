// Package transport serves the read-only reporting API over the ledger.
package transport

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/model"
)

const (
	defaultPaymentLimit = 50
	maxPaymentLimit     = 500
)

// Server exposes ledger state over REST. All routes except /api/health
// require the bearer token when one is configured.
type Server struct {
	ledger Ledger
	coins  []model.Coin
	token  string
	logger *zap.Logger
}

func NewServer(ledger Ledger, coins []model.Coin, token string, logger *zap.Logger) *Server {
	return &Server{ledger: ledger, coins: coins, token: token, logger: logger}
}

// Handler builds the route table with auth and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/stats/{coin}", s.handleCoinStats)
	mux.HandleFunc("GET /api/miner/{coin}/{address}", s.handleMiner)
	mux.HandleFunc("GET /api/payments/{coin}", s.handlePayments)
	mux.HandleFunc("GET /api/payments/{coin}/{address}", s.handleMinerPayments)

	return cors.Default().Handler(s.authenticate(mux))
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
		s.logger.Info("api server listening", zap.String("addr", addr))
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

// authenticate enforces the bearer token on everything but the health
// endpoint. An empty configured token disables auth entirely.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" || r.URL.Path == "/api/health" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]statsResponse, len(s.coins))
	for _, coin := range s.coins {
		stats, err := s.ledger.Stats(r.Context(), coin)
		if err != nil {
			s.logger.Error("stats query failed", zap.String("coin", coin.String()), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "stats query failed")
			return
		}
		out[coin.String()] = statsResponseFrom(stats)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCoinStats(w http.ResponseWriter, r *http.Request) {
	coin, ok := s.coinFromPath(w, r)
	if !ok {
		return
	}

	stats, err := s.ledger.Stats(r.Context(), coin)
	if err != nil {
		s.logger.Error("stats query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "stats query failed")
		return
	}
	writeJSON(w, http.StatusOK, statsResponseFrom(stats))
}

func (s *Server) handleMiner(w http.ResponseWriter, r *http.Request) {
	coin, ok := s.coinFromPath(w, r)
	if !ok {
		return
	}
	address := r.PathValue("address")

	balance, err := s.ledger.MinerBalance(r.Context(), coin, address)
	if err != nil {
		s.logger.Error("miner query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "miner query failed")
		return
	}
	if balance == nil {
		writeError(w, http.StatusNotFound, "miner not found")
		return
	}

	payments, err := s.ledger.MinerPayments(r.Context(), coin, address, defaultPaymentLimit)
	if err != nil {
		s.logger.Error("miner payments query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "miner query failed")
		return
	}

	writeJSON(w, http.StatusOK, minerResponseFrom(balance, payments))
}

func (s *Server) handlePayments(w http.ResponseWriter, r *http.Request) {
	coin, ok := s.coinFromPath(w, r)
	if !ok {
		return
	}

	payments, err := s.ledger.RecentPayments(r.Context(), coin, limitParam(r))
	if err != nil {
		s.logger.Error("payments query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "payments query failed")
		return
	}
	writeJSON(w, http.StatusOK, paymentsResponseFrom(payments))
}

func (s *Server) handleMinerPayments(w http.ResponseWriter, r *http.Request) {
	coin, ok := s.coinFromPath(w, r)
	if !ok {
		return
	}
	address := r.PathValue("address")

	payments, err := s.ledger.MinerPayments(r.Context(), coin, address, limitParam(r))
	if err != nil {
		s.logger.Error("payments query failed", zap.String("coin", coin.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "payments query failed")
		return
	}
	writeJSON(w, http.StatusOK, paymentsResponseFrom(payments))
}

func (s *Server) coinFromPath(w http.ResponseWriter, r *http.Request) (model.Coin, bool) {
	coin, err := model.ParseCoin(r.PathValue("coin"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return coin, true
}

func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultPaymentLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultPaymentLimit
	}
	if limit > maxPaymentLimit {
		return maxPaymentLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
