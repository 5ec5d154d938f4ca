package engine

import "errors"

// Size is the board edge length.
const Size = 8

// ErrNoPiece is returned by Apply when the move's start square is empty.
// Game.Play validates moves first, so hitting it indicates a caller bug.
var ErrNoPiece = errors.New("engine: no piece at move start")

// Board is the 8x8 grid. Only dark squares, those with (row+col) even,
// ever hold pieces. The zero value is an empty board.
type Board [Size][Size]Cell

// NewBoard returns a board with the standard opening setup: Black men on
// the dark squares of rows 0-2, White men on rows 5-7.
func NewBoard() *Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !Playable(Position{r, c}) {
				continue
			}
			switch {
			case r < 3:
				b[r][c] = BlackMan
			case r > 4:
				b[r][c] = WhiteMan
			}
		}
	}
	return &b
}

// Playable reports whether the square is a dark square, the only kind a
// piece may occupy.
func Playable(p Position) bool {
	return (p.Row+p.Col)%2 == 0
}

// Inside reports whether the position is on the board.
func (b *Board) Inside(p Position) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// At returns the cell at p, or Invalid for positions off the board.
func (b *Board) At(p Position) Cell {
	if !b.Inside(p) {
		return Invalid
	}
	return b[p.Row][p.Col]
}

// Set places a cell at p. Writes off the board are ignored.
func (b *Board) Set(p Position, c Cell) {
	if !b.Inside(p) {
		return
	}
	b[p.Row][p.Col] = c
}

// Remove clears the square at p. Off-board positions are ignored.
func (b *Board) Remove(p Position) {
	b.Set(p, Empty)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Apply commits a move: the piece leaves its start square, every captured
// piece is removed, and the piece lands on the move's final square. A Man
// reaching the opponent's back rank is promoted to King. The move is
// trusted to be legal; only the presence of a piece at the start is
// checked.
func (b *Board) Apply(m Move) error {
	piece := b.At(m.Start)
	if !piece.IsPiece() {
		return ErrNoPiece
	}
	b.Remove(m.Start)
	for _, taken := range m.Captures {
		b.Remove(taken)
	}
	end := m.End()
	if piece.Rank() == Man && end.Row == piece.Owner().promotionRow() {
		piece = piece.promoted()
	}
	b.Set(end, piece)
	return nil
}

// Pieces returns the positions of all pieces owned by side, in row-major
// board-scan order.
func (b *Board) Pieces(side Side) []Position {
	var out []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := b[r][c]
			if cell.IsPiece() && cell.Owner() == side {
				out = append(out, Position{r, c})
			}
		}
	}
	return out
}
