package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.Equal(t, Black, g.Turn())
	assert.False(t, g.Over())
	assert.Len(t, g.LegalMoves(), 7)
}

func TestPlaySwitchesTurn(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)

	assert.True(t, g.Play(moves[0]))
	assert.Equal(t, White, g.Turn())
	assert.False(t, g.Over())
}

func TestPlayRejectsUnknownMove(t *testing.T) {
	g := NewGame()
	bogus := Move{Start: Position{2, 2}, Path: []Position{{5, 5}}}

	assert.False(t, g.Play(bogus))
	assert.Equal(t, Black, g.Turn(), "a rejected move leaves the turn unchanged")
	assert.False(t, g.Over())
	assert.Equal(t, BlackMan, g.Board().At(Position{2, 2}), "a rejected move leaves the board unchanged")
}

func TestPlayRejectsStructuralMismatch(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 3, WhiteMan)
	g := NewGameFrom(&b, Black)

	// Right squares but missing the capture list: not the same move.
	almost := Move{Start: Position{2, 2}, Path: []Position{{4, 4}}}
	assert.False(t, g.Play(almost))

	full := Move{Start: Position{2, 2}, Path: []Position{{4, 4}}, Captures: []Position{{3, 3}}}
	assert.True(t, g.Play(full))
}

func TestGameEndsWhenOpponentDepleted(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan) // white has no pieces at all
	g := NewGameFrom(&b, Black)
	require.False(t, g.Over())

	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	require.True(t, g.Play(moves[0]))

	assert.Equal(t, White, g.Turn(), "turn passes to the depleted side")
	assert.True(t, g.Over(), "a side with no moves ends the game")
	assert.Equal(t, Black, g.Winner())
}

func TestPlayAfterGameOver(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	g := NewGameFrom(&b, White) // white to move with no pieces
	require.True(t, g.Over())

	assert.False(t, g.Play(Move{Start: Position{2, 2}, Path: []Position{{3, 3}}}))
}

func TestGameCloneIsolation(t *testing.T) {
	g := NewGame()
	clone := g.Clone()

	moves := clone.LegalMoves()
	require.True(t, clone.Play(moves[0]))

	assert.Equal(t, Black, g.Turn(), "playing on the clone must not advance the original")
	assert.Equal(t, BlackMan, g.Board().At(moves[0].Start))
	assert.Equal(t, White, clone.Turn())
}

func TestGameBlockedSideLoses(t *testing.T) {
	// A white man trapped in the corner by black pieces: once black
	// closes the net, white has zero moves and the game ends.
	var b Board
	place(&b, 7, 7, WhiteMan)
	place(&b, 6, 6, BlackKing)
	place(&b, 5, 5, BlackKing)
	g := NewGameFrom(&b, White)

	// White's man can only try (6,6): occupied, and jumping it lands on
	// (5,5): occupied. No moves at all.
	assert.True(t, g.Over())
	assert.Equal(t, Black, g.Winner())
}
