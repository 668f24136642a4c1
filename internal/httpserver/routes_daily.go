// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each player can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB once finished.
// Word selection is deterministic: HMAC(salt, date) over the answers list.

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-verdict/internal/daily"
	"github.com/robalobadob/wordle-verdict/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	sessions map[string]*dailySession // keyed by playerID|date
	mu       sync.Mutex               // guards sessions and their games
}

// dailySession holds in-memory state for an in-progress daily game.
type dailySession struct {
	GameID    string
	PlayerID  string
	Date      string
	WordIndex int
	Start     time.Time
	Game      *game.Game
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, sessions: make(map[string]*dailySession)}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dailyWord returns the date key, word index, and answer for t.
func (s *Server) dailyWord(t time.Time) (date string, idx int, answer string) {
	n, _ := s.deps.Words.Stats()
	idx = daily.WordIndex(t, s.deps.DailySalt, n)
	return daily.DateKey(t), idx, s.deps.Words.AnswerAt(idx)
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewReq struct {
	Hard bool `json:"hard"`
}

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
	Hard   bool   `json:"hard"`
}

// handleNew creates or reuses a daily session for the current date.
//   - If the player already has a DB row for today → Played=true.
//   - Otherwise create/reuse an in-memory session and return its GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	pid := d.srv.playerID(w, r)
	now := d.srv.now()
	date, idx, answer := d.srv.dailyWord(now)

	played, err := d.srv.deps.Daily.AlreadyPlayed(r.Context(), pid, date)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	key := pid + "|" + date
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneLocked(date)
	if sess, ok := d.sessions[key]; ok {
		writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.GameID, Date: date, Hard: sess.Game.Hard})
		return
	}
	g := game.New(answer, game.Options{Rows: d.srv.deps.Rows, Hard: req.Hard})
	sess := &dailySession{
		GameID:    uuid.NewString(),
		PlayerID:  pid,
		Date:      date,
		WordIndex: idx,
		Start:     now,
		Game:      g,
	}
	d.sessions[key] = sess
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.GameID, Date: date, Hard: g.Hard})
}

// pruneLocked drops sessions from previous dates. Caller holds d.mu.
func (d *dailyServer) pruneLocked(today string) {
	for k, s := range d.sessions {
		if s.Date != today {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type dailyGuessRes struct {
	Marks   []int  `json:"marks"` // per-letter: 0=absent, 1=present, 2=correct
	State   string `json:"state"` // in_progress | won | lost | locked
	Guesses int    `json:"guesses"`
	Answer  string `json:"answer,omitempty"`
}

// handleGuess applies a guess to today's session and persists the result
// once the game is won or lost.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var p dailyGuessReq
	if err := decode(r, &p); err != nil || p.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	pid := d.srv.playerID(w, r)
	now := d.srv.now()
	date := daily.DateKey(now)

	d.mu.Lock()
	sess, ok := d.sessions[pid+"|"+date]
	if !ok || sess.GameID != p.GameID {
		d.mu.Unlock()
		writeError(w, http.StatusConflict, "no_session", "")
		return
	}
	g := sess.Game
	if g.Finished {
		n := len(g.Guesses)
		d.mu.Unlock()
		writeJSON(w, http.StatusOK, dailyGuessRes{Marks: []int{}, State: "locked", Guesses: n})
		return
	}
	res, state, err := g.ApplyGuess(p.Word, d.srv.deps.Words)
	guesses := len(g.Guesses)
	d.mu.Unlock()
	if err != nil {
		writeGameError(w, err)
		return
	}

	out := dailyGuessRes{Marks: res.Codes(), State: "in_progress", Guesses: guesses}
	if state != game.StatePlaying {
		out.State = string(state)
		out.Answer = g.Answer
		err := d.srv.deps.Daily.InsertResult(r.Context(), daily.Result{
			PlayerID:  pid,
			Date:      date,
			WordIndex: sess.WordIndex,
			Guesses:   guesses,
			ElapsedMs: int(now.Sub(sess.Start).Milliseconds()),
			Solved:    state == game.StateWon,
		})
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("player", pid).Msg("insert daily result")
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	} else if _, err := daily.ParseDateKey(date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date", "want YYYY-MM-DD")
		return
	}
	rows, err := d.srv.deps.Daily.Leaderboard(r.Context(), date, daily.DefaultLeaderboardLimit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
