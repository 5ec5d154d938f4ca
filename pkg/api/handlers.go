package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/yourusername/draughts/internal/boardcode"
	"github.com/yourusername/draughts/pkg/bot"
	"github.com/yourusername/draughts/pkg/engine"
)

// Bot search budget bounds enforced at this boundary; the bot itself does
// not clamp.
const (
	MinBudgetMs     = 100
	MaxBudgetMs     = 10000
	DefaultBudgetMs = 1000
)

// Handlers holds the HTTP handlers.
type Handlers struct {
	version string
	pool    *WorkerPool
}

// NewHandlers creates a Handlers instance. pool may be nil to disable
// admission control.
func NewHandlers(version string, pool *WorkerPool) *Handlers {
	return &Handlers{version: version, pool: pool}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// parseGame decodes a boardcode position into a resumed game.
func parseGame(position string) (*engine.Game, error) {
	board, turn, err := boardcode.Decode(position)
	if err != nil {
		return nil, err
	}
	return engine.NewGameFrom(board, turn), nil
}

// moveJSON converts a move to its wire form.
func moveJSON(m engine.Move) MoveJSON {
	out := MoveJSON{
		Start:    m.Start.Notation(),
		Notation: m.Notation(),
	}
	for _, p := range m.Path {
		out.Path = append(out.Path, p.Notation())
	}
	for _, p := range m.Captures {
		out.Captures = append(out.Captures, p.Notation())
	}
	return out
}

// clampBudget applies the [MinBudgetMs, MaxBudgetMs] bounds, defaulting
// an unset budget.
func clampBudget(ms int) int {
	if ms == 0 {
		return DefaultBudgetMs
	}
	if ms < MinBudgetMs {
		return MinBudgetMs
	}
	if ms > MaxBudgetMs {
		return MaxBudgetMs
	}
	return ms
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: h.version}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

// Moves handles POST /api/moves.
func (h *Handlers) Moves(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireQuery(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseQuery()
	}

	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}
	game, err := parseGame(req.Position)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_POSITION")
		return
	}

	moves := game.LegalMoves()
	resp := MovesResponse{
		Turn:       game.Turn().String(),
		Moves:      make([]MoveJSON, 0, len(moves)),
		Highlights: make(map[string][]string),
		Over:       game.Over(),
	}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, moveJSON(m))
	}
	for start, targets := range engine.Highlights(moves) {
		for _, t := range targets {
			resp.Highlights[start.Notation()] = append(resp.Highlights[start.Notation()], t.Notation())
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Apply handles POST /api/apply.
func (h *Handlers) Apply(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireQuery(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseQuery()
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}
	game, err := parseGame(req.Position)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_POSITION")
		return
	}
	squares, err := engine.ParseMovePath(req.Move)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_MOVE")
		return
	}
	move, ok := game.FindMove(squares)
	if !ok || !game.Play(move) {
		writeError(w, http.StatusUnprocessableEntity, "move is not legal in this position", "MOVE_REJECTED")
		return
	}

	resp := ApplyResponse{
		Position: boardcode.Encode(game.Board(), game.Turn()),
		Turn:     game.Turn().String(),
		Over:     game.Over(),
	}
	if game.Over() {
		resp.Winner = game.Winner().String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// BestMove handles POST /api/bestmove.
func (h *Handlers) BestMove(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireSearch(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseSearch()
	}

	var req BestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}
	game, err := parseGame(req.Position)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_POSITION")
		return
	}

	budget := clampBudget(req.BudgetMs)
	player := bot.New(game.Turn(), time.Duration(budget)*time.Millisecond)
	move := player.BestMove(context.Background(), game)

	resp := BestMoveResponse{
		Notation: engine.NoMoveText,
		Position: req.Position,
		Over:     game.Over(),
		BudgetMs: budget,
	}
	if move != nil {
		game.Play(*move)
		mj := moveJSON(*move)
		resp.Move = &mj
		resp.Notation = move.Notation()
		resp.Position = boardcode.Encode(game.Board(), game.Turn())
		resp.Over = game.Over()
	}
	writeJSON(w, http.StatusOK, resp)
}
