package engine

import (
	"testing"

	"github.com/hailam/othello/internal/board"
)

func TestSolveOneEmptyForcedWin(t *testing.T) {
	// Row 0 is Black, White*6, empty; every other square is Black, so
	// the one legal move (7,0) is a forced West-ward capture of all
	// six White discs, filling the board entirely for Black.
	b := board.Board{
		Black: board.Singleton(board.Loc{X: 0, Y: 0}),
		White: board.Singleton(board.Loc{X: 1, Y: 0}) |
			board.Singleton(board.Loc{X: 2, Y: 0}) |
			board.Singleton(board.Loc{X: 3, Y: 0}) |
			board.Singleton(board.Loc{X: 4, Y: 0}) |
			board.Singleton(board.Loc{X: 5, Y: 0}) |
			board.Singleton(board.Loc{X: 6, Y: 0}),
	}
	for y := 1; y < 8; y++ {
		for x := 0; x < 8; x++ {
			b.Black = b.Black.Set(board.Loc{X: x, Y: y})
		}
	}
	if got := b.Empties(); got != 1 {
		t.Fatalf("fixture has %d empties, want 1", got)
	}

	s := NewSearcher()
	move, score := s.Solve(b, board.Black)

	wantMove := board.Loc{X: 7, Y: 0}
	if move != wantMove {
		t.Errorf("Solve move = %v, want %v", move, wantMove)
	}
	if score <= 0 {
		t.Errorf("Solve score = %d, want a strictly positive forced win", score)
	}
	if score != 64 {
		t.Errorf("Solve score = %d, want 64 (full board for Black)", score)
	}
}

func TestSolveConservesDiscCount(t *testing.T) {
	b := board.StartingBoard()
	// Play down to a position with few empties using the lowest-index
	// legal move so the solver has a small, fast-to-verify tree.
	c := board.Black
	for i := 0; i < 50 && !b.IsTerminal(); i++ {
		if !b.HasMoves(c) {
			c = c.Opponent()
			continue
		}
		moves := b.FindMoves(c).Locs()
		b = b.ResolveMove(c, moves[0])
		c = c.Opponent()
	}

	s := NewSearcher()
	move, _ := s.Solve(b, c)
	if !move.IsPass() {
		next := b.ResolveMove(c, move)
		total := next.Black.PopCount() + next.White.PopCount()
		if total != b.Black.PopCount()+b.White.PopCount()+1 {
			t.Errorf("solver move changed disc count unexpectedly")
		}
	}
}

func TestTimeManagerAllocatesWithinBudget(t *testing.T) {
	tm := NewTimeManager()
	tm.Init(10000, 20)
	if tm.ShouldStop() {
		t.Error("fresh allocation should not immediately report stop")
	}
}

func TestTimeManagerUnlimited(t *testing.T) {
	tm := NewTimeManager()
	tm.Init(-1, 20)
	if tm.ShouldStop() {
		t.Error("unlimited time should not report stop immediately")
	}
}
