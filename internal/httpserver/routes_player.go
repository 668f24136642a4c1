package httpserver

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"
)

// mountPlayerRoutes registers gated routes (/stats/me, /games/mine).
// Without a History there is nothing to serve and the routes 404.
func (s *Server) mountPlayerRoutes() {
	if s.deps.History == nil {
		return
	}
	s.r.With(s.requireAuth()).Get("/stats/me", s.handleStats)
	s.r.With(s.requireAuth()).Get("/games/mine", s.handleMyGames)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r)
	st, err := s.deps.History.Stats(r.Context(), me.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("player stats")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":           me.ID,
		"name":         me.Name,
		"gamesPlayed":  st.Played,
		"wins":         st.Wins,
		"streak":       st.Streak,
		"maxStreak":    st.MaxStreak,
		"distribution": st.Distribution,
	})
}

func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	rows, err := s.deps.History.Recent(r.Context(), me.ID, limit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("recent games")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
