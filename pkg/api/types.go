// Package api provides the HTTP/JSON and WebSocket serving surface for
// the draughts engine. Positions travel as boardcode strings; squares and
// moves as coordinate notation ("C3", "C3->E5->G7").
package api

// ============================================================================
// Request types
// ============================================================================

// MovesRequest asks for the legal moves of the position's side to move.
type MovesRequest struct {
	Position string `json:"position"` // boardcode position string
}

// ApplyRequest asks to play a move on the given position.
type ApplyRequest struct {
	Position string `json:"position"` // boardcode position string
	Move     string `json:"move"`     // move notation, e.g. "C3->D4"
}

// BestMoveRequest asks the bot for a move under a time budget.
type BestMoveRequest struct {
	Position string `json:"position"`            // boardcode position string
	BudgetMs int    `json:"budget_ms,omitempty"` // clamped to [100, 10000]; default 1000
}

// ============================================================================
// Response types
// ============================================================================

// MoveJSON describes one legal move.
type MoveJSON struct {
	Start    string   `json:"start"`              // start square, e.g. "C3"
	Path     []string `json:"path"`               // landing squares in order
	Captures []string `json:"captures,omitempty"` // captured squares, one per jump
	Notation string   `json:"notation"`           // "C3->E5->G7"
}

// MovesResponse lists the legal moves plus, per start square, the first
// landing square of each move, for highlighting reachable cells.
type MovesResponse struct {
	Turn       string              `json:"turn"`
	Moves      []MoveJSON          `json:"moves"`
	Highlights map[string][]string `json:"highlights"`
	Over       bool                `json:"over"`
}

// ApplyResponse carries the position after a successfully applied move.
type ApplyResponse struct {
	Position string `json:"position"`
	Turn     string `json:"turn"`
	Over     bool   `json:"over"`
	Winner   string `json:"winner,omitempty"`
}

// BestMoveResponse carries the bot's chosen move, or the no-move sentinel
// when its side has nothing to play.
type BestMoveResponse struct {
	Move     *MoveJSON `json:"move,omitempty"`
	Notation string    `json:"notation"` // move notation or "no move"
	Position string    `json:"position"` // position after the move (unchanged if none)
	Over     bool      `json:"over"`
	BudgetMs int       `json:"budget_ms"` // budget actually used, after clamping
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Pool    *PoolStats `json:"pool,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
