// Package engine implements the exact endgame solver and the move-time
// allocation shared by the tree-search players.
package engine

import (
	"sort"
	"sync/atomic"

	"github.com/hailam/othello/internal/board"
)

// Infinity bounds the alpha-beta window; it exceeds any reachable
// disc-differential score (at most 64).
const Infinity = 1000

// squareWeight orders candidate moves before alpha-beta recursion:
// corners are the best squares a mover can occupy, the X-squares and
// C-squares next to the corners are the worst. The weights are fixed
// and do not depend on whether the corner is occupied.
var squareWeight = [8][8]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// Searcher performs the exact endgame alpha-beta search. It is
// reusable across calls but not safe for concurrent use.
type Searcher struct {
	nodes    uint64
	stopFlag atomic.Bool
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stop requests that an in-progress Solve return as soon as possible.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Nodes returns the number of positions visited by the last Solve call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Solve exhaustively searches b for color c and returns the move to
// play and the resulting disc-differential under optimal play by both
// sides, measured from c's perspective. b must have empties small
// enough to search to completion; the search has no depth cap of its
// own.
func (s *Searcher) Solve(b board.Board, c board.PlayerColor) (board.Loc, int) {
	s.nodes = 0
	s.stopFlag.Store(false)

	if !b.HasMoves(c) {
		if !b.HasMoves(c.Opponent()) {
			return board.PassLoc, differential(b, c)
		}
		_, score := s.Solve(b, c.Opponent())
		return board.PassLoc, -score
	}

	moves := orderedMoves(b, c)
	bestMove := moves[0]
	bestScore := -Infinity
	alpha, beta := -Infinity, Infinity

	for _, m := range moves {
		next := b.ResolveMove(c, m)
		score := -s.negamax(next, c.Opponent(), -beta, -alpha)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestMove, bestScore
}

// negamax returns the best achievable disc-differential for c from b,
// under the given alpha-beta window, from c's perspective.
func (s *Searcher) negamax(b board.Board, c board.PlayerColor, alpha, beta int) int {
	s.nodes++
	if s.nodes&4095 == 0 && s.stopFlag.Load() {
		return 0
	}

	if b.IsTerminal() {
		return differential(b, c)
	}
	if !b.HasMoves(c) {
		return -s.negamax(b, c.Opponent(), -beta, -alpha)
	}

	best := -Infinity
	for _, m := range orderedMoves(b, c) {
		next := b.ResolveMove(c, m)
		score := -s.negamax(next, c.Opponent(), -beta, -alpha)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// differential is the terminal evaluation: final disc count for c
// minus the opponent's, positive meaning c wins.
func differential(b board.Board, c board.PlayerColor) int {
	mine, opp := b.PlayerView(c)
	return mine.PopCount() - opp.PopCount()
}

// orderedMoves returns c's legal moves in descending square-weight
// order so alpha-beta sees strong candidates first.
func orderedMoves(b board.Board, c board.PlayerColor) []board.Loc {
	moves := b.FindMoves(c).Locs()
	sort.Slice(moves, func(i, j int) bool {
		a, bb := moves[i], moves[j]
		return squareWeight[a.Y][a.X] > squareWeight[bb.Y][bb.X]
	})
	return moves
}
