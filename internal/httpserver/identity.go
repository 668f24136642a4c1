package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-verdict/internal/auth"
)

const anonCookieName = "wordle_anon"

// ctxPlayerKey is the context key type for storing *auth.Player.
type ctxPlayerKey struct{}

func playerFrom(r *http.Request) *auth.Player {
	p, _ := r.Context().Value(ctxPlayerKey{}).(*auth.Player)
	return p
}

// authenticate returns the player named by a valid token, or nil.
func (s *Server) authenticate(r *http.Request) *auth.Player {
	if s.deps.Issuer == nil {
		return nil
	}
	tok := auth.TokenFromRequest(r, s.deps.CookieName)
	if tok == "" {
		return nil
	}
	p, err := s.deps.Issuer.Parse(tok)
	if err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token")
		return nil
	}
	return p
}

// withOptionalAuth decorates requests with the player if a valid JWT is present.
// It never 401s. A guest's anonymous history is handed over the first time
// they show up with a token.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p := s.authenticate(r); p != nil {
				s.claimAnon(w, r, p.ID)
				r = r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth enforces a valid JWT and injects the player into the context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.TokenFromRequest(r, s.deps.CookieName) == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			p := s.authenticate(r)
			if p == nil {
				writeError(w, http.StatusUnauthorized, "invalid_token", "")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, p)))
		})
	}
}

// requireAdmin checks X-Admin-Key against the configured bcrypt hash.
// With no hash configured the admin routes do not exist.
func (s *Server) requireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.deps.Admin.Enabled() {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
				return
			}
			if !s.deps.Admin.Verify(r.Header.Get("X-Admin-Key")) {
				writeError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// playerID returns the authenticated player ID, or the anonymous cookie ID
// (creating the cookie on first use).
func (s *Server) playerID(w http.ResponseWriter, r *http.Request) string {
	if p := playerFrom(r); p != nil {
		return p.ID
	}
	return s.ensureAnonID(w, r)
}

// ensureAnonID returns an existing anon cookie or sets a new one.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, s.cookie(anonCookieName, id, time.Now().Add(180*24*time.Hour)))
	return id
}

// claimAnon moves anonymous games to playerID and drops the anon cookie.
func (s *Server) claimAnon(w http.ResponseWriter, r *http.Request, playerID string) {
	c, err := r.Cookie(anonCookieName)
	if err != nil || c.Value == "" || s.deps.History == nil {
		return
	}
	n, err := s.deps.History.Claim(r.Context(), c.Value, playerID)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("claim anon games")
		return
	}
	if n > 0 {
		hlog.FromRequest(r).Info().Int64("games", n).Str("player", playerID).Msg("claimed anon games")
	}
	expired := s.cookie(anonCookieName, "", time.Time{})
	expired.MaxAge = -1
	http.SetCookie(w, expired)
}

func (s *Server) cookie(name, value string, exp time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.deps.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.deps.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	}
}
