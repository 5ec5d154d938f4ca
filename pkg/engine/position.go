// Package engine implements the draughts (English checkers) rules engine:
// board representation, legal move generation under the mandatory-capture
// rule, move application with promotion, and the turn state machine.
package engine

// Side identifies one of the two players.
type Side uint8

const (
	// Black starts on rows 0-2 and moves toward row 7.
	Black Side = iota
	// White starts on rows 5-7 and moves toward row 0.
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// forward is the row direction a Man of this side moves in.
func (s Side) forward() int {
	if s == Black {
		return 1
	}
	return -1
}

// promotionRow is the opponent's back rank, where a Man becomes a King.
func (s Side) promotionRow() int {
	if s == Black {
		return Size - 1
	}
	return 0
}

// Rank distinguishes basic pieces from promoted ones.
type Rank uint8

const (
	Man Rank = iota
	King
)

// Position is a board coordinate. Row 0 is the top rank, Col 0 the left
// file. Validity is not baked in; the board bounds-checks on access.
type Position struct {
	Row, Col int
}

// Cell is one square of the board: empty, a piece, or the out-of-bounds
// marker returned by reads past the edge.
type Cell uint8

const (
	Empty Cell = iota
	BlackMan
	BlackKing
	WhiteMan
	WhiteKing
	// Invalid is returned by Board.At for coordinates off the board.
	Invalid
)

// NewCell returns the cell value for a piece of the given side and rank.
func NewCell(side Side, rank Rank) Cell {
	switch {
	case side == Black && rank == Man:
		return BlackMan
	case side == Black && rank == King:
		return BlackKing
	case side == White && rank == Man:
		return WhiteMan
	default:
		return WhiteKing
	}
}

// IsPiece reports whether the cell holds a piece.
func (c Cell) IsPiece() bool {
	return c >= BlackMan && c <= WhiteKing
}

// Owner returns the side owning the piece. Only meaningful when IsPiece.
func (c Cell) Owner() Side {
	if c == BlackMan || c == BlackKing {
		return Black
	}
	return White
}

// Rank returns the piece's rank. Only meaningful when IsPiece.
func (c Cell) Rank() Rank {
	if c == BlackKing || c == WhiteKing {
		return King
	}
	return Man
}

// promoted returns the King cell for the piece's owner.
func (c Cell) promoted() Cell {
	return NewCell(c.Owner(), King)
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "-"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	case WhiteMan:
		return "w"
	case WhiteKing:
		return "W"
	default:
		return "?"
	}
}
