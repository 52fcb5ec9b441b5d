package player

import (
	"math/rand"

	"github.com/hailam/othello/internal/board"
)

// RandomPlayer chooses uniformly among its legal moves. It carries no
// state between turns and ignores oppMove and msLeft.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns a RandomPlayer seeded from src.
func NewRandomPlayer(src rand.Source) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(src)}
}

func (p *RandomPlayer) Name() string { return "RandomPlayer" }

func (p *RandomPlayer) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	moves := b.FindMoves(c).Locs()
	if len(moves) == 0 {
		return board.PassLoc
	}
	return moves[p.rng.Intn(len(moves))]
}
