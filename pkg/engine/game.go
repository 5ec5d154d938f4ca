package engine

// Game wraps a Board with the turn state machine: whose move it is and
// whether the game has ended. All mutation goes through Play.
type Game struct {
	board *Board
	turn  Side
	over  bool
}

// NewGame starts a game from the standard setup with Black to move.
func NewGame() *Game {
	return &Game{board: NewBoard(), turn: Black}
}

// NewGameFrom resumes a game from an arbitrary board with the given side
// to move. The terminal flag is derived from that side's legal moves. The
// board is used directly, not copied.
func NewGameFrom(b *Board, turn Side) *Game {
	g := &Game{board: b, turn: turn}
	g.over = len(g.LegalMoves()) == 0
	return g
}

// Board exposes the underlying board for reads. Callers must not mutate
// it directly; use Play.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Side {
	return g.turn
}

// Over reports whether the game has ended, which happens when the side to
// move has no legal moves.
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the side that won a finished game: the opponent of the
// side stuck without moves. Only meaningful when Over.
func (g *Game) Winner() Side {
	return g.turn.Opponent()
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() []Move {
	return g.board.LegalMoves(g.turn)
}

// Play validates m against the current legal moves and, on a structural
// match, applies it, passes the turn, and re-checks the new side for
// moves, ending the game if it has none. It returns false, with no state
// change, for a move not in the legal list or when the game is over.
func (g *Game) Play(m Move) bool {
	if g.over {
		return false
	}
	legal := false
	for _, lm := range g.LegalMoves() {
		if m.Equal(lm) {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}
	if err := g.board.Apply(m); err != nil {
		// Unreachable: the move was just validated against the board.
		panic(err)
	}
	g.turn = g.turn.Opponent()
	if len(g.LegalMoves()) == 0 {
		g.over = true
	}
	return true
}

// Clone returns a deep copy sharing no state with the original. The
// search engine plays speculative lines on clones so the live game is
// never touched.
func (g *Game) Clone() *Game {
	return &Game{
		board: g.board.Clone(),
		turn:  g.turn,
		over:  g.over,
	}
}
