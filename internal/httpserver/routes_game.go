package httpserver

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-verdict/internal/game"
	"github.com/robalobadob/wordle-verdict/internal/store"
	"github.com/robalobadob/wordle-verdict/internal/verdict"
)

// ------------------------------ EVALUATE -----------------------------------

type evaluateReq struct {
	Answer string `json:"answer"`
	Guess  string `json:"guess"`
}

type evaluateRes struct {
	Verdicts verdict.Result `json:"verdicts"`
	Codes    []int          `json:"codes"`
	Solved   bool           `json:"solved"`
	Grid     string         `json:"grid"`
}

// handleEvaluate scores an arbitrary answer/guess pair. No dictionary, no state.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	res, err := verdict.Evaluate(req.Answer, req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "length_mismatch", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, evaluateRes{Verdicts: res, Codes: res.Codes(), Solved: res.Solved(), Grid: res.String()})
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Hard   bool   `json:"hard"`
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type newGameRes struct {
	GameID string `json:"gameId"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Hard   bool   `json:"hard"`
}

// handleNewGame creates a new in-memory game and records its owner row.
// Finished and idle games are swept first so the store stays bounded.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	answer := req.Answer
	if answer == "" {
		answer = s.deps.Words.RandomAnswer()
	} else if !s.deps.Words.IsAllowed(answer) {
		writeError(w, http.StatusBadRequest, "invalid_answer", "answer must be an allowed word")
		return
	}

	s.sweepGames(r.Context())
	g := game.New(answer, game.Options{Rows: s.deps.Rows, Hard: req.Hard})
	if err := s.deps.Games.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}

	player := s.playerID(w, r)
	if s.deps.History != nil {
		if err := s.deps.History.Start(r.Context(), g.ID, player, modeName(g.Hard)); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("record game start")
		}
	}

	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Rows: g.Rows, Cols: g.Cols, Hard: g.Hard})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Verdicts  verdict.Result `json:"verdicts"`
	State     game.State     `json:"state"`
	Guesses   int            `json:"guesses"`
	Remaining int            `json:"remaining"`
	Answer    string         `json:"answer,omitempty"` // revealed once finished
	Share     string         `json:"share,omitempty"`
}

// handleGuess applies a guess to an in-memory game and records progress.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	var out guessRes
	err := s.deps.Games.Update(r.Context(), req.GameID, func(g *game.Game) error {
		res, state, err := g.ApplyGuess(req.Guess, s.deps.Words)
		if err != nil {
			return err
		}
		out = guessRes{Verdicts: res, State: state, Guesses: len(g.Guesses), Remaining: g.Remaining()}
		if g.Finished {
			out.Answer = g.Answer
			out.Share = g.Share()
		}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	if s.deps.History != nil {
		if err := s.deps.History.RecordGuess(r.Context(), req.GameID, out.State); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("record guess")
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// writeGameError maps engine and store errors onto HTTP responses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "game_finished", "")
	case errors.Is(err, game.ErrNotInWordList):
		writeError(w, http.StatusBadRequest, "not_in_word_list", "")
	case errors.Is(err, game.ErrHardMode):
		writeError(w, http.StatusBadRequest, "hard_mode", err.Error())
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", "")
	}
}

func modeName(hard bool) string {
	if hard {
		return "hard"
	}
	return "normal"
}
