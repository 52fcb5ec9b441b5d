package player

import (
	"math/rand"
	"testing"

	"github.com/hailam/othello/internal/board"
)

func TestRandomPlayerReturnsLegalMove(t *testing.T) {
	p := NewRandomPlayer(rand.NewSource(1))
	b := board.StartingBoard()
	for i := 0; i < 20; i++ {
		m := p.GetMove(b, board.Black, board.PassLoc, -1)
		if !b.FindMoves(board.Black).IsSet(m) {
			t.Fatalf("RandomPlayer returned illegal move %v", m)
		}
	}
}

func TestSolverHandoffUsesSolverNearEnd(t *testing.T) {
	base := NewRandomPlayer(rand.NewSource(2))
	h := NewSolverHandoff(base, 10, 0)

	// One empty square left (h1): row 1 is Black, White*6, empty and
	// every other square is Black, so the position is well inside the
	// solver threshold.
	b := board.Board{Black: board.Universe &^ board.RankMask[0]}
	b.Black = b.Black.Set(board.Loc{X: 0, Y: 0})
	for x := 1; x < 7; x++ {
		b.White = b.White.Set(board.Loc{X: x, Y: 0})
	}
	move := h.GetMove(b, board.Black, board.PassLoc, 10000)
	if !b.FindMoves(board.Black).IsSet(move) {
		t.Fatalf("handoff returned illegal move %v", move)
	}
}

func TestSolverHandoffDelegatesEarly(t *testing.T) {
	base := NewRandomPlayer(rand.NewSource(3))
	h := NewSolverHandoff(base, 0, 100) // never trips with 60 empties

	b := board.StartingBoard()
	move := h.GetMove(b, board.Black, board.PassLoc, 10000)
	if !b.FindMoves(board.Black).IsSet(move) {
		t.Fatalf("handoff returned illegal move %v", move)
	}
}

func TestSolverHandoffPassesWhenNoMoves(t *testing.T) {
	base := NewRandomPlayer(rand.NewSource(4))
	h := NewSolverHandoff(base, 20, 0)

	full := board.Board{Black: board.Universe &^ board.RankMask[7], White: board.RankMask[7]}
	move := h.GetMove(full, board.Black, board.PassLoc, 1000)
	if !move.IsPass() {
		t.Errorf("expected pass on a position with no legal moves, got %v", move)
	}
}
