package engine

// Move is one turn's action for a single piece: the start square, the
// ordered landing squares, and the opposing pieces removed along the way.
// Simple moves have a single landing square and no captures; capture
// chains have one capture per landing square. Once built a Move is
// treated as immutable.
type Move struct {
	Start    Position
	Path     []Position
	Captures []Position
}

// End returns the final landing square, or Start for a pathless move
// (which never arises from the generator).
func (m Move) End() Position {
	if len(m.Path) == 0 {
		return m.Start
	}
	return m.Path[len(m.Path)-1]
}

// IsCapture reports whether the move removes at least one opposing piece.
func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Equal reports structural equality: same start, same landing sequence,
// same captures in order.
func (m Move) Equal(o Move) bool {
	if m.Start != o.Start || len(m.Path) != len(o.Path) || len(m.Captures) != len(o.Captures) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != o.Path[i] {
			return false
		}
	}
	for i := range m.Captures {
		if m.Captures[i] != o.Captures[i] {
			return false
		}
	}
	return true
}

// extend returns a copy of the move with one more jump appended. The
// receiver's slices are never aliased, so sibling branches of the chain
// search cannot clobber each other.
func (m Move) extend(land, captured Position) Move {
	path := make([]Position, len(m.Path), len(m.Path)+1)
	copy(path, m.Path)
	caps := make([]Position, len(m.Captures), len(m.Captures)+1)
	copy(caps, m.Captures)
	return Move{
		Start:    m.Start,
		Path:     append(path, land),
		Captures: append(caps, captured),
	}
}

// captured reports whether p was already taken earlier in this chain.
func (m Move) captured(p Position) bool {
	for _, c := range m.Captures {
		if c == p {
			return true
		}
	}
	return false
}
