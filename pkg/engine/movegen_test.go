package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionMoves(t *testing.T) {
	b := NewBoard()

	black := b.LegalMoves(Black)
	assert.Len(t, black, 7, "black has seven opening moves")
	for _, m := range black {
		assert.False(t, m.IsCapture())
		assert.Len(t, m.Path, 1)
	}

	white := b.LegalMoves(White)
	assert.Len(t, white, 7)
}

func TestManForwardOnly(t *testing.T) {
	var b Board
	place(&b, 4, 4, BlackMan)

	moves := b.PieceMoves(Position{4, 4})
	require.Len(t, moves, 2)
	for _, m := range moves {
		assert.Equal(t, 5, m.Path[0].Row, "black man only moves toward row 7")
	}
}

func TestKingMovesAllDirections(t *testing.T) {
	var b Board
	place(&b, 4, 4, WhiteKing)

	moves := b.PieceMoves(Position{4, 4})
	assert.Len(t, moves, 4)
}

func TestPieceMovesEmptySquare(t *testing.T) {
	b := NewBoard()
	assert.Empty(t, b.PieceMoves(Position{3, 3}))
}

// The single-capture fixture: black man at (2,2), white man at (3,3),
// landing square (4,4) empty.
func TestSingleCapture(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 3, WhiteMan)

	moves := b.PieceMoves(Position{2, 2})
	require.Len(t, moves, 1)
	m := moves[0]
	assert.Equal(t, Position{2, 2}, m.Start)
	assert.Equal(t, []Position{{4, 4}}, m.Path)
	assert.Equal(t, []Position{{3, 3}}, m.Captures)

	require.NoError(t, b.Apply(m))
	assert.Equal(t, Empty, b.At(Position{2, 2}))
	assert.Equal(t, Empty, b.At(Position{3, 3}))
	assert.Equal(t, BlackMan, b.At(Position{4, 4}))
}

func TestForcedCapture(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan) // can capture (3,3)
	place(&b, 2, 6, BlackMan) // has only quiet moves
	place(&b, 3, 3, WhiteMan)

	moves := b.LegalMoves(Black)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.True(t, m.IsCapture(), "with a capture available, only captures are legal: got %s", m.Notation())
	}
	assert.Len(t, moves, 1)
}

// Non-empty move lists are homogeneous: all captures or all quiet.
func TestNoMixedMoveLists(t *testing.T) {
	boards := []*Board{NewBoard()}

	var capture Board
	place(&capture, 2, 2, BlackMan)
	place(&capture, 3, 3, WhiteMan)
	place(&capture, 5, 5, WhiteMan)
	boards = append(boards, &capture)

	for _, b := range boards {
		for _, side := range []Side{Black, White} {
			moves := b.LegalMoves(side)
			if len(moves) == 0 {
				continue
			}
			first := moves[0].IsCapture()
			for _, m := range moves {
				assert.Equal(t, first, m.IsCapture())
			}
		}
	}
}

func TestMultiJumpChain(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 3, WhiteMan)
	place(&b, 5, 5, WhiteMan)

	moves := b.PieceMoves(Position{2, 2})
	require.Len(t, moves, 1, "the chain prefix must not be reported standalone")
	m := moves[0]
	assert.Equal(t, []Position{{4, 4}, {6, 6}}, m.Path)
	assert.Equal(t, []Position{{3, 3}, {5, 5}}, m.Captures)

	require.NoError(t, b.Apply(m))
	assert.Equal(t, Empty, b.At(Position{3, 3}))
	assert.Equal(t, Empty, b.At(Position{5, 5}))
	assert.Equal(t, BlackMan, b.At(Position{6, 6}))
}

// Two diverging chains of different lengths: both leaves are returned,
// with no longest-chain filtering.
func TestBranchingChainsAllReturned(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 1, WhiteMan) // short branch: one capture, lands (4,0)
	place(&b, 3, 3, WhiteMan) // long branch: continues over (5,5)
	place(&b, 5, 5, WhiteMan)

	moves := b.PieceMoves(Position{2, 2})
	require.Len(t, moves, 2)

	var lengths []int
	for _, m := range moves {
		lengths = append(lengths, len(m.Captures))
	}
	assert.ElementsMatch(t, []int{1, 2}, lengths)
}

// The chain search mutates the board as a scratchpad; it must restore it
// exactly before returning.
func TestChainSearchRestoresBoard(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 1, WhiteMan)
	place(&b, 3, 3, WhiteMan)
	place(&b, 5, 5, WhiteMan)
	before := b

	b.PieceMoves(Position{2, 2})
	assert.Equal(t, before, b)

	b.LegalMoves(Black)
	assert.Equal(t, before, b)
}

func TestKingCapturesBackward(t *testing.T) {
	var b Board
	place(&b, 4, 4, BlackKing)
	place(&b, 3, 3, WhiteMan) // behind the king relative to Black's direction

	moves := b.PieceMoves(Position{4, 4})
	require.Len(t, moves, 1)
	assert.Equal(t, []Position{{2, 2}}, moves[0].Path)
	assert.Equal(t, []Position{{3, 3}}, moves[0].Captures)
}

// A king looping through a diamond of enemy pieces must not capture the
// same piece twice; the chain terminates once every reachable piece is
// taken.
func TestKingChainNoRejump(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackKing)
	place(&b, 3, 3, WhiteMan)
	place(&b, 5, 5, WhiteMan)
	place(&b, 5, 3, WhiteMan)
	place(&b, 3, 5, WhiteMan)

	moves := b.PieceMoves(Position{2, 2})
	require.NotEmpty(t, moves)
	for _, m := range moves {
		seen := map[Position]bool{}
		for _, c := range m.Captures {
			assert.False(t, seen[c], "piece at %v captured twice in %s", c, m.Notation())
			seen[c] = true
		}
	}
}

func TestBlockedLandingNoCapture(t *testing.T) {
	var b Board
	place(&b, 2, 2, BlackMan)
	place(&b, 3, 3, WhiteMan)
	place(&b, 4, 4, WhiteMan) // landing square occupied

	moves := b.PieceMoves(Position{2, 2})
	require.Len(t, moves, 1)
	assert.False(t, moves[0].IsCapture(), "blocked jump falls back to the open step")
	assert.Equal(t, []Position{{3, 1}}, moves[0].Path)
}

func TestEdgeOfBoardCapture(t *testing.T) {
	var b Board
	place(&b, 5, 7, BlackMan)
	place(&b, 6, 6, WhiteMan)

	moves := b.PieceMoves(Position{5, 7})
	require.Len(t, moves, 1)
	assert.Equal(t, []Position{{7, 5}}, moves[0].Path)
}
