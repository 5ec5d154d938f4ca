// Package bot selects moves for the computer player. It runs an
// iterative-deepening minimax with alpha-beta pruning under a wall-clock
// budget, fanning the root moves out across goroutines each depth. Every
// speculative line is played on its own clone of the game, so the only
// shared state between workers is the deadline, observed through the
// context.
package bot

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/draughts/pkg/engine"
)

const infinity = math.MaxInt32

// Bot is a computer player for one side. It keeps no search state between
// calls.
type Bot struct {
	side   engine.Side
	budget time.Duration
}

// New returns a bot playing side with the given wall-clock budget per
// move. Callers clamp the budget to a sane range; the bot uses whatever
// it is handed.
func New(side engine.Side, budget time.Duration) *Bot {
	return &Bot{side: side, budget: budget}
}

// Side returns the side the bot plays.
func (b *Bot) Side() engine.Side {
	return b.side
}

// rootResult is one root move's evaluation for a single depth iteration.
type rootResult struct {
	move     engine.Move
	score    int
	complete bool
}

// BestMove returns the strongest move found for the side to move before
// the budget runs out, or nil when that side has no legal move at all.
// The deadline firing mid-search is the normal stop signal, not an error:
// the bot falls back to the best move from the deepest fully-usable
// iteration.
func (b *Bot) BestMove(ctx context.Context, g *engine.Game) *engine.Move {
	ctx, cancel := context.WithTimeout(ctx, b.budget)
	defer cancel()

	start := time.Now()
	var best *engine.Move
	bestScore := -infinity - 1

	for depth := 1; ctx.Err() == nil; depth++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			return nil
		}

		results := b.searchRoot(ctx, g, moves, depth)

		// Pick the best among the root moves that finished this depth.
		// Interrupted results are discarded; a depth that improves on
		// nothing leaves the previous depth's move in place.
		found := false
		var depthBest engine.Move
		depthScore := -infinity - 1
		for _, r := range results {
			if !r.complete {
				continue
			}
			if !found || r.score > depthScore {
				found = true
				depthBest = r.move
				depthScore = r.score
			}
		}
		if found && depthScore > bestScore {
			bestScore = depthScore
			m := depthBest
			best = &m
		}
		if found {
			log.Debug().
				Int("depth", depth).
				Int("score", depthScore).
				Str("move", depthBest.Notation()).
				Dur("elapsed", time.Since(start)).
				Msg("depth completed")
		}
	}
	return best
}

// searchRoot evaluates every root move in parallel at the given depth.
// Each worker owns a private clone of the game; results land in disjoint
// slots of the result slice.
func (b *Bot) searchRoot(ctx context.Context, g *engine.Game, moves []engine.Move, depth int) []rootResult {
	results := make([]rootResult, len(moves))
	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func(i int, m engine.Move) {
			defer wg.Done()
			child := g.Clone()
			child.Play(m)
			score, complete := b.minimax(ctx, child, depth-1, -infinity, infinity)
			results[i] = rootResult{move: m, score: score, complete: complete}
		}(i, m)
	}
	wg.Wait()
	return results
}

// minimax searches the game tree to the given remaining depth and returns
// the position's score for the bot. The second return is false when the
// deadline fired anywhere in the subtree, meaning the score came from a
// truncated search. The game's side to move decides whether the node
// maximizes (bot to move) or minimizes (opponent to move); beta <= alpha
// cuts off the remaining siblings.
func (b *Bot) minimax(ctx context.Context, g *engine.Game, depth, alpha, beta int) (int, bool) {
	if ctx.Err() != nil {
		return b.evaluate(g.Board()), false
	}
	if depth == 0 || g.Over() {
		return b.evaluate(g.Board()), true
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return b.evaluate(g.Board()), true
	}

	maximizing := g.Turn() == b.side
	best := infinity
	if maximizing {
		best = -infinity
	}
	complete := true

	for _, m := range moves {
		if ctx.Err() != nil {
			return best, false
		}
		child := g.Clone()
		child.Play(m)
		score, ok := b.minimax(ctx, child, depth-1, alpha, beta)
		if !ok {
			complete = false
		}
		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best, complete
}
