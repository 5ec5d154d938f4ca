package engine

import (
	"fmt"
	"strings"
)

// NoMoveText is the fixed rendering for "no legal move". It can never be
// confused with a coordinate string.
const NoMoveText = "no move"

// Notation renders the square in letter-digit form: columns A-H left to
// right, rows 1-8 top to bottom, so {2, 2} is "C3".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// Notation renders the move as its squares joined by "->", e.g. "C3->D4"
// or "C3->E5->G7" for a double jump.
func (m Move) Notation() string {
	parts := make([]string, 0, len(m.Path)+1)
	parts = append(parts, m.Start.Notation())
	for _, p := range m.Path {
		parts = append(parts, p.Notation())
	}
	return strings.Join(parts, "->")
}

// ParseSquare parses letter-digit notation ("C3", case-insensitive) into
// a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("engine: bad square %q", s)
	}
	col := int(s[0]&^0x20) - 'A' // fold to upper case
	row := int(s[1]) - '1'
	p := Position{Row: row, Col: col}
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return Position{}, fmt.Errorf("engine: bad square %q", s)
	}
	return p, nil
}

// ParseMovePath parses "C3->E5->G7" into its squares: the start followed
// by at least one landing square.
func ParseMovePath(s string) ([]Position, error) {
	parts := strings.Split(s, "->")
	if len(parts) < 2 {
		return nil, fmt.Errorf("engine: bad move %q", s)
	}
	squares := make([]Position, len(parts))
	for i, part := range parts {
		p, err := ParseSquare(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		squares[i] = p
	}
	return squares, nil
}

// FindMove matches a parsed square path against the game's legal moves
// and returns the full move, captures included. The bool is false when no
// legal move follows that path.
func (g *Game) FindMove(squares []Position) (Move, bool) {
	for _, m := range g.LegalMoves() {
		if m.Start != squares[0] || len(m.Path) != len(squares)-1 {
			continue
		}
		match := true
		for i, p := range m.Path {
			if p != squares[i+1] {
				match = false
				break
			}
		}
		if match {
			return m, true
		}
	}
	return Move{}, false
}

// Highlights returns, for each start square among the moves, the first
// landing square of every move from it. UIs use this to mark reachable
// cells for a selected piece.
func Highlights(moves []Move) map[Position][]Position {
	out := make(map[Position][]Position)
	for _, m := range moves {
		if len(m.Path) == 0 {
			continue
		}
		first := m.Path[0]
		seen := false
		for _, p := range out[m.Start] {
			if p == first {
				seen = true
				break
			}
		}
		if !seen {
			out[m.Start] = append(out[m.Start], first)
		}
	}
	return out
}

// Render returns a text diagram of the board with file and rank labels,
// one row per line from row 1 at the top.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d", r+1)
		for c := 0; c < Size; c++ {
			sb.WriteByte(' ')
			if !Playable(Position{r, c}) {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[r][c].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
