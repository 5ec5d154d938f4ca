// Command selfplay runs bot-vs-bot games and reports search statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/draughts/pkg/bot"
	"github.com/yourusername/draughts/pkg/engine"
)

func main() {
	games := flag.Int("games", 10, "Number of games to play")
	blackBudget := flag.Duration("black-budget", 250*time.Millisecond, "Black's time budget per move")
	whiteBudget := flag.Duration("white-budget", 250*time.Millisecond, "White's time budget per move")
	maxMoves := flag.Int("max-moves", 200, "Declare a draw after this many moves")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *games <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -games must be positive")
		os.Exit(1)
	}

	fmt.Printf("Playing %d game(s), black %v/move vs white %v/move\n\n", *games, *blackBudget, *whiteBudget)

	wins := map[string]int{}
	var gameLengths []float64
	var searchTimes []float64

	for i := 0; i < *games; i++ {
		result := playGame(*blackBudget, *whiteBudget, *maxMoves, &searchTimes)
		wins[result.winner]++
		gameLengths = append(gameLengths, float64(result.moves))
		fmt.Printf("Game %d: %s in %d moves\n", i+1, result.winner, result.moves)
	}

	meanLen, stdLen := stat.MeanStdDev(gameLengths, nil)
	meanSearch, stdSearch := stat.MeanStdDev(searchTimes, nil)

	fmt.Println()
	fmt.Printf("Results: black %d, white %d, draw %d\n", wins["black"], wins["white"], wins["draw"])
	fmt.Printf("Game length: mean %.1f moves, stddev %.1f\n", meanLen, stdLen)
	fmt.Printf("Search time: mean %.1f ms, stddev %.1f ms over %d moves\n",
		meanSearch, stdSearch, len(searchTimes))
}

type gameResult struct {
	winner string // "black", "white" or "draw"
	moves  int
}

// playGame runs one game to completion or the draw cutoff, appending each
// move's search time in milliseconds to searchTimes.
func playGame(blackBudget, whiteBudget time.Duration, maxMoves int, searchTimes *[]float64) gameResult {
	game := engine.NewGame()
	players := map[engine.Side]*bot.Bot{
		engine.Black: bot.New(engine.Black, blackBudget),
		engine.White: bot.New(engine.White, whiteBudget),
	}

	moves := 0
	for !game.Over() && moves < maxMoves {
		player := players[game.Turn()]
		start := time.Now()
		move := player.BestMove(context.Background(), game)
		*searchTimes = append(*searchTimes, float64(time.Since(start).Milliseconds()))
		if move == nil || !game.Play(*move) {
			break
		}
		moves++
	}

	if !game.Over() {
		return gameResult{winner: "draw", moves: moves}
	}
	return gameResult{winner: game.Winner().String(), moves: moves}
}
