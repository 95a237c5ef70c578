// internal/httpserver/server.go
//
// HTTP boundary for the puzzle core. The presentation layer and the
// watch-companion client consume these endpoints:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Daily puzzle + round result + score views: mounted in routes_play.go.
//
// Entitlement: requests may carry a purchase-system-signed JWT whose "tier"
// claim names the subscription level. The middleware decorates the request
// context with the verified tier; absent or invalid tokens fall back to the
// basic tier rather than failing the request.

package httpserver

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"puzzlepack/internal/access"
	"puzzlepack/internal/completion"
	"puzzlepack/internal/config"
	"puzzlepack/internal/daily"
	"puzzlepack/internal/scores"
)

// Server bundles the router and the core services.
type Server struct {
	r        *chi.Mux
	selector *daily.Selector
	pipeline *scores.Pipeline
	scores   *scores.Store
	tracker  *completion.Tracker
	tiers    *access.TierCache
	secret   string
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, sel *daily.Selector, pipe *scores.Pipeline, st *scores.Store, tr *completion.Tracker, tiers *access.TierCache) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		selector: sel,
		pipeline: pipe,
		scores:   st,
		tracker:  tr,
		tiers:    tiers,
		secret:   cfg.EntitlementSecret,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)
	s.r.Use(s.withEntitlement)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"puzzlepack","endpoints":["/health","GET /puzzle/{game}","POST /round/result","GET /scores"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountPlay()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxTierKey struct{}

// withEntitlement resolves the caller's subscription tier. A request carrying
// a bearer token gets the verified tier (cached for tokenless requests);
// otherwise the last cached tier applies. It never rejects a request.
func (s *Server) withEntitlement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tier access.Tier
		if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
			tier = access.TierFromToken(strings.TrimSpace(a[7:]), s.secret)
			s.tiers.Update(tier)
		} else {
			tier = s.tiers.Current()
		}
		ctx := context.WithValue(r.Context(), ctxTierKey{}, tier)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerTier reads the tier decorated onto the request context.
func callerTier(r *http.Request) access.Tier {
	if t, ok := r.Context().Value(ctxTierKey{}).(access.Tier); ok {
		return t
	}
	return access.Basic
}
