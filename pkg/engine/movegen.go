package engine

// diagonals, row-major order so generated moves are deterministic.
var allDirections = [4]Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// directions returns the diagonal step directions legal for the piece:
// all four for a King, the two forward ones for a Man.
func directions(piece Cell) []Position {
	if piece.Rank() == King {
		return allDirections[:]
	}
	fwd := piece.Owner().forward()
	return []Position{{fwd, -1}, {fwd, 1}}
}

// LegalMoves returns every legal move for side under the mandatory-capture
// rule: if any piece of the side can capture, only capturing moves are
// returned. Moves are ordered by board-scan order of their pieces.
func (b *Board) LegalMoves(side Side) []Move {
	var captures, quiets []Move
	for _, pos := range b.Pieces(side) {
		for _, m := range b.PieceMoves(pos) {
			if m.IsCapture() {
				captures = append(captures, m)
			} else {
				quiets = append(quiets, m)
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return quiets
}

// PieceMoves returns the legal moves for the piece at pos, or nil if the
// square is empty. Capture chains take precedence: when the piece can
// jump, only its complete chains are returned; otherwise its single-step
// diagonal moves.
func (b *Board) PieceMoves(pos Position) []Move {
	piece := b.At(pos)
	if !piece.IsPiece() {
		return nil
	}
	if chains := b.captureChains(pos, piece); len(chains) > 0 {
		return chains
	}
	var moves []Move
	for _, d := range directions(piece) {
		dest := Position{pos.Row + d.Row, pos.Col + d.Col}
		if b.At(dest) == Empty {
			moves = append(moves, Move{Start: pos, Path: []Position{dest}})
		}
	}
	return moves
}

// captureChains runs a depth-first search for every maximal jump sequence
// the piece at pos can make. The board itself is the scratchpad: each
// candidate jump is played on it, the search recurses from the landing
// square, and the jump is then undone exactly, so the board is unchanged
// when the search returns.
func (b *Board) captureChains(pos Position, piece Cell) []Move {
	var chains []Move
	b.searchChains(pos, piece, Move{Start: pos}, &chains)
	return chains
}

func (b *Board) searchChains(from Position, piece Cell, chain Move, out *[]Move) {
	jumped := false
	for _, d := range directions(piece) {
		over := Position{from.Row + d.Row, from.Col + d.Col}
		land := Position{from.Row + 2*d.Row, from.Col + 2*d.Col}
		target := b.At(over)
		if !target.IsPiece() || target.Owner() == piece.Owner() {
			continue
		}
		if chain.captured(over) {
			continue
		}
		if b.At(land) != Empty {
			continue
		}
		jumped = true

		// Simulate the jump, recurse, then restore all three squares.
		// Promotion is deliberately not applied here; it happens only
		// when Apply commits the finished move.
		b.Set(from, Empty)
		b.Set(over, Empty)
		b.Set(land, piece)

		b.searchChains(land, piece, chain.extend(land, over), out)

		b.Set(land, Empty)
		b.Set(over, target)
		b.Set(from, piece)
	}
	// Only leaves of the search are complete chains; prefixes with a
	// further jump available are never reported.
	if !jumped && len(chain.Path) > 0 {
		*out = append(*out, chain)
	}
}
