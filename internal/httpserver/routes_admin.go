package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-verdict/internal/daily"
)

// mountAdmin registers operator routes behind the admin key.
func (s *Server) mountAdmin() {
	s.r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin())
		r.Get("/words", s.handleAdminWords)
		r.Get("/daily", s.handleAdminDaily)
	})
}

// handleAdminWords reports loaded word list sizes.
func (s *Server) handleAdminWords(w http.ResponseWriter, r *http.Request) {
	a, g := s.deps.Words.Stats()
	writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
}

// handleAdminDaily reveals the daily answer for a date (default today).
func (s *Server) handleAdminDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	}
	n, _ := s.deps.Words.Stats()
	idx, err := daily.KeyWordIndex(date, s.deps.DailySalt, n)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_date", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "wordIndex": idx, "answer": s.deps.Words.AnswerAt(idx)})
}
