// Package boardcode implements a compact string encoding of a draughts
// position: the 32 playable squares in row-major order followed by the
// side to move. The API and CLI use it as their position wire format.
//
// Alphabet: '-' empty, 'b'/'B' black man/king, 'w'/'W' white man/king.
// Example (standard setup, black to move):
//
//	bbbbbbbbbbbb--------wwwwwwwwwwww:b
package boardcode

import (
	"fmt"
	"strings"

	"github.com/yourusername/draughts/pkg/engine"
)

// Squares is the number of playable squares encoded.
const Squares = 32

// Start is the encoding of the standard opening position.
const Start = "bbbbbbbbbbbb--------wwwwwwwwwwww:b"

var cellChar = map[engine.Cell]byte{
	engine.Empty:     '-',
	engine.BlackMan:  'b',
	engine.BlackKing: 'B',
	engine.WhiteMan:  'w',
	engine.WhiteKing: 'W',
}

var charCell = map[byte]engine.Cell{
	'-': engine.Empty,
	'b': engine.BlackMan,
	'B': engine.BlackKing,
	'w': engine.WhiteMan,
	'W': engine.WhiteKing,
}

// Encode renders the board and side to move as a position string.
func Encode(b *engine.Board, turn engine.Side) string {
	var sb strings.Builder
	sb.Grow(Squares + 2)
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			p := engine.Position{Row: r, Col: c}
			if !engine.Playable(p) {
				continue
			}
			sb.WriteByte(cellChar[b.At(p)])
		}
	}
	if turn == engine.Black {
		sb.WriteString(":b")
	} else {
		sb.WriteString(":w")
	}
	return sb.String()
}

// Decode parses a position string back into a board and side to move.
func Decode(s string) (*engine.Board, engine.Side, error) {
	if len(s) != Squares+2 || s[Squares] != ':' {
		return nil, 0, fmt.Errorf("boardcode: position must be %d squares plus ':b' or ':w', got %q", Squares, s)
	}
	var turn engine.Side
	switch s[Squares+1] {
	case 'b':
		turn = engine.Black
	case 'w':
		turn = engine.White
	default:
		return nil, 0, fmt.Errorf("boardcode: bad side to move %q", s[Squares+1])
	}
	var b engine.Board
	i := 0
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			p := engine.Position{Row: r, Col: c}
			if !engine.Playable(p) {
				continue
			}
			cell, ok := charCell[s[i]]
			if !ok {
				return nil, 0, fmt.Errorf("boardcode: bad square character %q at %d", s[i], i)
			}
			b.Set(p, cell)
			i++
		}
	}
	return &b, turn, nil
}
