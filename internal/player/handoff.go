package player

import (
	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/engine"
)

// SolverHandoff wraps a base Player and switches to the exact
// endgame solver once few enough squares remain, the same "wrap any
// player, fall through to a cheaper specialist near the end" shape
// used elsewhere in this codebase to layer search strategies.
type SolverHandoff struct {
	Base           Player
	DepthThreshold int // switch to the solver when empties <= this
	ReservedMs     int // time debited from the base player's budget per turn while not yet solving

	searcher *engine.Searcher
}

// NewSolverHandoff returns a handoff wrapping base.
func NewSolverHandoff(base Player, depthThreshold, reservedMs int) *SolverHandoff {
	return &SolverHandoff{
		Base:           base,
		DepthThreshold: depthThreshold,
		ReservedMs:     reservedMs,
		searcher:       engine.NewSearcher(),
	}
}

func (h *SolverHandoff) Name() string { return "SolverHandoff(" + h.Base.Name() + ")" }

func (h *SolverHandoff) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	if !b.HasMoves(c) {
		return board.PassLoc
	}
	if b.Empties() <= h.DepthThreshold {
		move, _ := h.searcher.Solve(b, c)
		return move
	}
	remaining := msLeft
	if remaining >= 0 {
		remaining -= h.ReservedMs
		if remaining < 0 {
			remaining = 0
		}
	}
	return h.Base.GetMove(b, c, oppMove, remaining)
}
