// draughts - command line front end for the draughts engine
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/yourusername/draughts/internal/boardcode"
	"github.com/yourusername/draughts/pkg/bot"
	"github.com/yourusername/draughts/pkg/engine"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "moves":
		cmdMoves(args)
	case "apply":
		cmdApply(args)
	case "bestmove":
		cmdBestMove(args)
	case "show":
		cmdShow(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`draughts - English draughts engine

Usage: draughts <command> [options]

Commands:
  moves     List legal moves for a position
  apply     Apply a move to a position
  bestmove  Search for the best move under a time budget
  show      Print a position as a board diagram

Positions are 32-square strings plus the side to move, e.g. the
starting position:

  ` + boardcode.Start + `

Moves use coordinate notation: C3->D4, or C3->E5->G7 for a double jump.`)
}

// parsePosition resumes a game from a -position flag value, defaulting to
// the starting position.
func parsePosition(pos string) (*engine.Game, error) {
	if pos == "" {
		pos = boardcode.Start
	}
	board, turn, err := boardcode.Decode(pos)
	if err != nil {
		return nil, err
	}
	return engine.NewGameFrom(board, turn), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdMoves(args []string) {
	fs := flag.NewFlagSet("moves", flag.ExitOnError)
	pos := fs.String("position", "", "Position string (default: starting position)")
	fs.Parse(args)

	game, err := parsePosition(*pos)
	if err != nil {
		fatalf("%v", err)
	}

	moves := game.LegalMoves()
	if len(moves) == 0 {
		fmt.Println(engine.NoMoveText)
		return
	}
	fmt.Printf("%s to move, %d legal move(s):\n", game.Turn(), len(moves))
	for _, m := range moves {
		fmt.Printf("  %s", m.Notation())
		if m.IsCapture() {
			fmt.Printf("  (captures %d)", len(m.Captures))
		}
		fmt.Println()
	}
}

func cmdApply(args []string) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	pos := fs.String("position", "", "Position string (default: starting position)")
	moveStr := fs.String("move", "", "Move in coordinate notation, e.g. C3->D4")
	fs.Parse(args)

	if *moveStr == "" {
		fatalf("move required\nUsage: draughts apply -position <pos> -move C3->D4")
	}
	game, err := parsePosition(*pos)
	if err != nil {
		fatalf("%v", err)
	}
	squares, err := engine.ParseMovePath(*moveStr)
	if err != nil {
		fatalf("%v", err)
	}
	move, ok := game.FindMove(squares)
	if !ok || !game.Play(move) {
		fatalf("move %s is not legal in this position", *moveStr)
	}

	fmt.Println(boardcode.Encode(game.Board(), game.Turn()))
	fmt.Print(game.Board().Render())
	if game.Over() {
		fmt.Printf("game over, %s wins\n", game.Winner())
	}
}

func cmdBestMove(args []string) {
	fs := flag.NewFlagSet("bestmove", flag.ExitOnError)
	pos := fs.String("position", "", "Position string (default: starting position)")
	budget := fs.Duration("budget", time.Second, "Search time budget")
	fs.Parse(args)

	game, err := parsePosition(*pos)
	if err != nil {
		fatalf("%v", err)
	}

	start := time.Now()
	player := bot.New(game.Turn(), *budget)
	move := player.BestMove(context.Background(), game)
	if move == nil {
		fmt.Println(engine.NoMoveText)
		return
	}
	fmt.Printf("%s  (searched %v)\n", move.Notation(), time.Since(start).Round(time.Millisecond))

	game.Play(*move)
	fmt.Println(boardcode.Encode(game.Board(), game.Turn()))
}

func cmdShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	pos := fs.String("position", "", "Position string (default: starting position)")
	fs.Parse(args)

	game, err := parsePosition(*pos)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(game.Board().Render())
	fmt.Printf("%s to move\n", game.Turn())
	if game.Over() {
		fmt.Printf("game over, %s wins\n", game.Winner())
	}
}
