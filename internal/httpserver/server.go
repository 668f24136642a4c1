// internal/httpserver/server.go
//
// HTTP server wiring for the game backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     zerolog access log, JSON content type).
//   - Public endpoints: "/", "/health", POST /evaluate.
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Player endpoints (require auth): /stats/me, /games/mine.
//   - Operator endpoints (admin key): /admin/*.
//
// Notes:
//   - Optional auth decorates requests with the player when a valid token is
//     present; guests get an anonymous cookie instead.
//   - Persistence of history is best effort: failures are logged, not returned.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-verdict/internal/auth"
	"github.com/robalobadob/wordle-verdict/internal/daily"
	"github.com/robalobadob/wordle-verdict/internal/store"
	"github.com/robalobadob/wordle-verdict/internal/words"
)

// DefaultGameTTL is how long an untouched game stays in memory.
const DefaultGameTTL = 24 * time.Hour

// Deps are the collaborators a Server needs.
type Deps struct {
	Games   store.Store
	History *store.History
	Daily   *daily.Store
	Words   *words.List
	Issuer  *auth.Issuer
	Admin   auth.AdminKey

	CookieName     string // player token cookie
	SecureCookies  bool   // Secure + SameSite=None (production)
	DailySalt      string
	Rows           int
	RequestTimeout time.Duration
	GameTTL        time.Duration // idle games older than this are dropped
	Now            func() time.Time
}

// Server bundles router and dependencies.
type Server struct {
	r    *chi.Mux
	deps Deps
	now  func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 10 * time.Second
	}
	if d.GameTTL <= 0 {
		d.GameTTL = DefaultGameTTL
	}
	now := d.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	s := &Server{r: chi.NewRouter(), deps: d, now: now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(d.RequestTimeout))
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-verdict",
			"endpoints": []string{"/health", "POST /evaluate", "POST /game/new", "POST /game/guess", "/daily/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// Stateless evaluator
	s.r.Post("/evaluate", s.handleEvaluate)

	// Game endpoints: optional auth, guests can play
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)

	// Daily Challenge: optional auth
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Player history (require auth)
	s.mountPlayerRoutes()

	// Operator routes (admin key)
	s.mountAdmin()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	})

	return s
}

// Handler exposes the router (useful for tests and embedding).
func (s *Server) Handler() http.Handler { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("listening")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(sctx)
	})
	g.Go(func() error {
		t := time.NewTicker(sweepInterval(s.deps.GameTTL))
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				s.sweepGames(gctx)
			}
		}
	})
	return g.Wait()
}

// sweepInterval is a quarter of the TTL, kept within [1s, 1m].
func sweepInterval(ttl time.Duration) time.Duration {
	iv := ttl / 4
	switch {
	case iv < time.Second:
		return time.Second
	case iv > time.Minute:
		return time.Minute
	}
	return iv
}

// sweepGames drops finished games and games idle past GameTTL.
func (s *Server) sweepGames(ctx context.Context) int {
	ids, err := s.deps.Games.Stale(ctx, time.Now().Add(-s.deps.GameTTL))
	if err != nil {
		log.Warn().Err(err).Msg("list stale games")
		return 0
	}
	n := 0
	for _, id := range ids {
		if err := s.deps.Games.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("gameId", id).Msg("delete stale game")
			continue
		}
		n++
	}
	if n > 0 {
		log.Debug().Int("games", n).Int("held", s.deps.Games.Len()).Msg("swept games")
	}
	return n
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("requestId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}
