// internal/httpserver/routes_play.go
//
// Gameplay-facing routes:
//   - GET  /puzzle/{game}            → today's (or an archive date's) puzzle
//   - POST /round/result             → submit a terminal round outcome
//   - GET  /scores                   → ledger views (per game, top, recent)
//   - GET  /completion/{game}        → played-for-score check for a day
//
// Archive dates are gated by AccessPolicy using the entitlement tier from
// the request context; the consuming app reports outcomes here and the
// pipeline decides whether the play is scored or a replay.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"puzzlepack/internal/access"
	"puzzlepack/internal/game"
	"puzzlepack/internal/scores"
)

func (s *Server) mountPlay() {
	s.r.Get("/puzzle/{game}", s.handlePuzzle)
	s.r.Post("/round/result", s.handleRoundResult)
	s.r.Get("/scores", s.handleScores)
	s.r.Get("/scores/top", s.handleTopScores)
	s.r.Get("/scores/recent", s.handleRecentScores)
	s.r.Get("/scores/latest/{game}", s.handleLatestScore)
	s.r.Get("/completion/{game}", s.handleCompletion)
}

// gameParam validates the {game} path segment.
func gameParam(r *http.Request) (game.ID, bool) {
	g := game.ID(chi.URLParam(r, "game"))
	return g, g.Valid()
}

// dateParam parses an optional ?date=YYYY-MM-DD query, defaulting to now.
func (s *Server) dateParam(r *http.Request) (time.Time, bool) {
	q := r.URL.Query().Get("date")
	if q == "" {
		return s.now(), true
	}
	t, err := game.ParseDayKey(q)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// puzzleRes is returned by GET /puzzle/{game}.
type puzzleRes struct {
	Game      game.ID `json:"game"`
	Date      string  `json:"date"`
	Scoreable bool    `json:"scoreable"`
	Puzzle    any     `json:"puzzle"`
}

// handlePuzzle resolves the daily puzzle for a game and date. Archive dates
// outside the caller's tier window are denied.
func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	g, ok := gameParam(r)
	if !ok {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusNotFound)
		return
	}
	date, ok := s.dateParam(r)
	if !ok {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}
	if !access.CanAccess(callerTier(r), date, s.now()) {
		http.Error(w, `{"error":"archive_locked"}`, http.StatusForbidden)
		return
	}
	entry, err := s.selector.Puzzle(g, date)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(puzzleRes{
		Game:      g,
		Date:      game.DayKey(date),
		Scoreable: s.tracker.ShouldScoreThisPlay(g, date),
		Puzzle:    entry,
	})
}

// resultReq is the POST /round/result payload: a terminal round outcome.
type resultReq struct {
	Game        game.ID     `json:"game"`
	Date        string      `json:"date"`
	Attempts    int         `json:"attempts"`
	TimeElapsed float64     `json:"timeElapsed"`
	Won         bool        `json:"won"`
	Detail      game.Detail `json:"detail"`
}

type resultRes struct {
	Record scores.Record `json:"record"`
	Scored bool          `json:"scored"`
}

// handleRoundResult runs the outcome through the scoring pipeline. Replays
// of an already-scored day come back with Scored=false and no ledger write.
func (s *Server) handleRoundResult(w http.ResponseWriter, r *http.Request) {
	var req resultReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !req.Game.Valid() {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusBadRequest)
		return
	}
	date, err := game.ParseDayKey(req.Date)
	if err != nil {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}

	rec, scored, err := s.pipeline.Finish(game.Outcome{
		Game:        req.Game,
		Date:        date,
		Attempts:    req.Attempts,
		TimeElapsed: req.TimeElapsed,
		Won:         req.Won,
		Detail:      req.Detail,
	})
	// A non-nil err here is persistence trouble only; the record is still
	// good for this session, so report it rather than failing the round.
	_ = err
	_ = json.NewEncoder(w).Encode(resultRes{Record: rec, Scored: scored})
}

// handleScores returns the ledger, optionally filtered by ?game=.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	g := game.ID(r.URL.Query().Get("game"))
	if g != "" && !g.Valid() {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(s.scores.Query(g))
}

func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.scores.TopN(limitParam(r, 10)))
}

func (s *Server) handleRecentScores(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.scores.Recent(limitParam(r, 10)))
}

// handleLatestScore surfaces "your last result" for a game.
func (s *Server) handleLatestScore(w http.ResponseWriter, r *http.Request) {
	g, ok := gameParam(r)
	if !ok {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusNotFound)
		return
	}
	rec, found := s.scores.MostRecentScore(g)
	if !found {
		http.Error(w, `{"error":"no_scores"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

// completionRes is returned by GET /completion/{game}.
type completionRes struct {
	Game      game.ID `json:"game"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
}

func (s *Server) handleCompletion(w http.ResponseWriter, r *http.Request) {
	g, ok := gameParam(r)
	if !ok {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusNotFound)
		return
	}
	date, ok := s.dateParam(r)
	if !ok {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(completionRes{
		Game:      g,
		Date:      game.DayKey(date),
		Completed: s.tracker.IsCompleted(g, date),
	})
}

// limitParam parses ?n=, clamped to [1, 100].
func limitParam(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n < 1 {
		return def
	}
	if n > 100 {
		return 100
	}
	return n
}
