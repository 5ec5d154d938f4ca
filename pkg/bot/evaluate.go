package bot

import "github.com/yourusername/draughts/pkg/engine"

// Piece values for the material count.
const (
	manValue  = 1
	kingValue = 2
)

// evaluate scores the board from the bot's point of view: +1 per own man,
// +2 per own king, negated for opposing pieces. There are no positional
// terms.
func (b *Bot) evaluate(board *engine.Board) int {
	score := 0
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			cell := board.At(engine.Position{Row: r, Col: c})
			if !cell.IsPiece() {
				continue
			}
			v := manValue
			if cell.Rank() == engine.King {
				v = kingValue
			}
			if cell.Owner() == b.side {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
