package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/draughts/internal/boardcode"
	"github.com/yourusername/draughts/pkg/bot"
	"github.com/yourusername/draughts/pkg/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins; front a reverse proxy in production
	},
}

// WSMessage is a generic WebSocket message.
type WSMessage struct {
	Type    string          `json:"type"`    // "new", "move", "hint", "state", "ping"
	ID      string          `json:"id"`      // request ID for correlating responses
	Payload json.RawMessage `json:"payload"` // type-specific payload
}

// WSResponse is a generic WebSocket response.
type WSResponse struct {
	Type    string      `json:"type"`              // "state", "hint", "error", "pong"
	ID      string      `json:"id,omitempty"`      // request ID
	Payload interface{} `json:"payload,omitempty"` // response data
	Error   string      `json:"error,omitempty"`   // error message if any
}

// NewGamePayload configures a session game.
type NewGamePayload struct {
	BotSide  string `json:"bot_side"`            // "black", "white" or "" for no bot
	BudgetMs int    `json:"budget_ms,omitempty"` // bot budget, clamped like the REST API
}

// MovePayload carries a human move in coordinate notation.
type MovePayload struct {
	Move string `json:"move"`
}

// GameStatePayload is the session state sent after every action.
type GameStatePayload struct {
	Position string    `json:"position"`
	Turn     string    `json:"turn"`
	Over     bool      `json:"over"`
	Winner   string    `json:"winner,omitempty"`
	BotMove  *MoveJSON `json:"bot_move,omitempty"` // set when the bot just replied
	Board    string    `json:"board"`              // text rendering
}

// wsSession is one connected client with its own game. Messages are
// handled sequentially by the read loop, so the game needs no lock.
type wsSession struct {
	conn     *websocket.Conn
	sendChan chan WSResponse
	game     *engine.Game
	botSide  engine.Side
	hasBot   bool
	budget   time.Duration
}

// WebSocket handles GET /api/ws: an interactive game session.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	s := &wsSession{conn: conn, sendChan: make(chan WSResponse, 256)}
	go s.writePump()
	s.readPump()
}

func (s *wsSession) writePump() {
	defer s.conn.Close()
	for msg := range s.sendChan {
		if err := s.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (s *wsSession) readPump() {
	defer func() { close(s.sendChan); s.conn.Close() }()
	for {
		var msg WSMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handleMessage(msg)
	}
}

func (s *wsSession) handleMessage(msg WSMessage) {
	switch msg.Type {
	case "new":
		s.handleNew(msg)
	case "move":
		s.handleMove(msg)
	case "hint":
		s.handleHint(msg)
	case "state":
		s.handleState(msg)
	case "ping":
		s.sendChan <- WSResponse{Type: "pong", ID: msg.ID}
	default:
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type"}
	}
}

func (s *wsSession) handleNew(msg WSMessage) {
	var req NewGamePayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
			return
		}
	}
	s.game = engine.NewGame()
	s.hasBot = false
	switch req.BotSide {
	case "black":
		s.hasBot, s.botSide = true, engine.Black
	case "white":
		s.hasBot, s.botSide = true, engine.White
	case "":
	default:
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "bot_side must be black, white or empty"}
		return
	}
	s.budget = time.Duration(clampBudget(req.BudgetMs)) * time.Millisecond

	// If the bot opens the game, it moves right away.
	var botMove *engine.Move
	if s.hasBot && s.game.Turn() == s.botSide {
		botMove = s.playBot()
	}
	s.sendChan <- WSResponse{Type: "state", ID: msg.ID, Payload: s.statePayload(botMove)}
}

func (s *wsSession) handleMove(msg WSMessage) {
	if s.game == nil {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "no game in progress"}
		return
	}
	var req MovePayload
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	squares, err := engine.ParseMovePath(req.Move)
	if err != nil {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
		return
	}
	move, ok := s.game.FindMove(squares)
	if !ok || !s.game.Play(move) {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "move rejected"}
		return
	}

	var botMove *engine.Move
	if s.hasBot && !s.game.Over() && s.game.Turn() == s.botSide {
		botMove = s.playBot()
	}
	s.sendChan <- WSResponse{Type: "state", ID: msg.ID, Payload: s.statePayload(botMove)}
}

func (s *wsSession) handleHint(msg WSMessage) {
	if s.game == nil {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "no game in progress"}
		return
	}
	budget := s.budget
	if budget == 0 {
		budget = DefaultBudgetMs * time.Millisecond
	}
	adviser := bot.New(s.game.Turn(), budget)
	move := adviser.BestMove(context.Background(), s.game.Clone())
	if move == nil {
		s.sendChan <- WSResponse{Type: "hint", ID: msg.ID, Payload: engine.NoMoveText}
		return
	}
	mj := moveJSON(*move)
	s.sendChan <- WSResponse{Type: "hint", ID: msg.ID, Payload: mj}
}

func (s *wsSession) handleState(msg WSMessage) {
	if s.game == nil {
		s.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "no game in progress"}
		return
	}
	s.sendChan <- WSResponse{Type: "state", ID: msg.ID, Payload: s.statePayload(nil)}
}

// playBot runs the session bot on the live game and applies its move.
func (s *wsSession) playBot() *engine.Move {
	player := bot.New(s.botSide, s.budget)
	move := player.BestMove(context.Background(), s.game)
	if move != nil {
		s.game.Play(*move)
	}
	return move
}

func (s *wsSession) statePayload(botMove *engine.Move) GameStatePayload {
	p := GameStatePayload{
		Position: boardcode.Encode(s.game.Board(), s.game.Turn()),
		Turn:     s.game.Turn().String(),
		Over:     s.game.Over(),
		Board:    s.game.Board().Render(),
	}
	if s.game.Over() {
		p.Winner = s.game.Winner().String()
	}
	if botMove != nil {
		mj := moveJSON(*botMove)
		p.BotMove = &mj
	}
	return p
}
