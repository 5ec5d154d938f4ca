package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNotation(t *testing.T) {
	assert.Equal(t, "A1", Position{0, 0}.Notation())
	assert.Equal(t, "C3", Position{2, 2}.Notation())
	assert.Equal(t, "H8", Position{7, 7}.Notation())
	assert.Equal(t, "D2", Position{1, 3}.Notation())
}

func TestParseSquare(t *testing.T) {
	p, err := ParseSquare("C3")
	require.NoError(t, err)
	assert.Equal(t, Position{2, 2}, p)

	p, err = ParseSquare("h8")
	require.NoError(t, err)
	assert.Equal(t, Position{7, 7}, p, "lower case is accepted")

	for _, bad := range []string{"", "C", "C33", "I1", "A0", "A9", "33"} {
		_, err := ParseSquare(bad)
		assert.Error(t, err, "square %q", bad)
	}
}

func TestMoveNotation(t *testing.T) {
	simple := Move{Start: Position{2, 2}, Path: []Position{{3, 3}}}
	assert.Equal(t, "C3->D4", simple.Notation())

	double := Move{
		Start:    Position{2, 2},
		Path:     []Position{{4, 4}, {6, 6}},
		Captures: []Position{{3, 3}, {5, 5}},
	}
	assert.Equal(t, "C3->E5->G7", double.Notation())
}

func TestNoMoveTextIsNotACoordinate(t *testing.T) {
	assert.NotContains(t, NoMoveText, "->")
	_, err := ParseSquare(NoMoveText)
	assert.Error(t, err)
}

func TestParseMovePath(t *testing.T) {
	squares, err := ParseMovePath("C3->E5->G7")
	require.NoError(t, err)
	assert.Equal(t, []Position{{2, 2}, {4, 4}, {6, 6}}, squares)

	for _, bad := range []string{"", "C3", "C3->Z9", "->C3"} {
		_, err := ParseMovePath(bad)
		assert.Error(t, err, "move %q", bad)
	}
}

func TestFindMoveFillsCaptures(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 3, WhiteMan)
	g := NewGameFrom(&b, Black)

	squares, err := ParseMovePath("C3->E5")
	require.NoError(t, err)

	m, ok := g.FindMove(squares)
	require.True(t, ok)
	assert.Equal(t, []Position{{3, 3}}, m.Captures, "the matched move carries its captures")

	// A path that is no legal move does not match.
	squares, err = ParseMovePath("C3->D4")
	require.NoError(t, err)
	_, ok = g.FindMove(squares)
	assert.False(t, ok, "quiet move is illegal while a capture exists")
}

func TestHighlights(t *testing.T) {
	b := NewBoard()
	hl := Highlights(b.LegalMoves(Black))

	// The centre men each reach two squares, the edge man one.
	assert.Len(t, hl[Position{2, 2}], 2)
	assert.Len(t, hl[Position{2, 0}], 1)
	assert.NotContains(t, hl, Position{1, 1}, "pieces without moves are absent")
}

func TestRender(t *testing.T) {
	out := NewBoard().Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, Size+1, "header plus eight rows")
	assert.Contains(t, lines[0], "A B C")
	assert.Contains(t, lines[1], "b")
	assert.Contains(t, lines[8], "w")
}
