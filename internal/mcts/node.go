// Package mcts implements a random-rollout Monte Carlo Tree Search player.
package mcts

import (
	"math"
	"math/rand"

	"github.com/hailam/othello/internal/board"
)

// node is one position in the search tree. value accumulates how
// often the side about to move AT THIS NODE went on to lose — the
// sign convention that makes a parent favor children with a high
// value, since a high loss rate for the child's mover is good for
// whoever chose to move into that child.
type node struct {
	board board.Board
	color board.PlayerColor

	visits int
	value  float64

	unexplored []board.Loc
	children   map[board.Loc]*node
}

// newNode builds a node for board b with c to move. c must either
// have a legal move on b or b must be terminal; nextToMove guarantees
// this for every node built during search.
func newNode(b board.Board, c board.PlayerColor) *node {
	n := &node{board: b, color: c, children: make(map[board.Loc]*node)}
	if !b.IsTerminal() {
		n.unexplored = b.FindMoves(c).Locs()
	}
	return n
}

// nextToMove resolves which color is to move on b immediately after
// justMoved played a move, inlining a forced pass: if the opponent
// has no reply, the same side moves again.
func nextToMove(b board.Board, justMoved board.PlayerColor) board.PlayerColor {
	opp := justMoved.Opponent()
	if b.HasMoves(opp) {
		return opp
	}
	if b.HasMoves(justMoved) {
		return justMoved
	}
	return opp
}

// recordOutcome updates this node's visit and value statistics given
// the terminal outcome of a simulation that passed through it.
func (n *node) recordOutcome(outcome board.GameOutcome) {
	n.visits++
	if outcome == board.Draw {
		n.value += 0.5
		return
	}
	if winner, _ := outcome.Winner(); winner != n.color {
		n.value += 1
	}
}

const explorationDefault = 4.0

// uct1 scores a child for selection from its parent's visit count.
func uct1(parentVisits int, child *node, c float64) float64 {
	q := child.value / float64(child.visits)
	return q + c*math.Sqrt(math.Log(float64(parentVisits))/float64(child.visits))
}

// selectChild picks the explored child maximizing the UCT-1 score.
func (n *node) selectChild(c float64) (board.Loc, *node) {
	var bestMove board.Loc
	var best *node
	bestScore := math.Inf(-1)
	for mv, child := range n.children {
		score := uct1(n.visits, child, c)
		if score > bestScore {
			bestScore = score
			best = child
			bestMove = mv
		}
	}
	return bestMove, best
}

// expand materializes one unexplored move as a child, evaluating it
// immediately if terminal or else via a random rollout, and records
// the outcome at the child.
func (n *node) expand(rng *rand.Rand) board.GameOutcome {
	i := rng.Intn(len(n.unexplored))
	mv := n.unexplored[i]
	n.unexplored[i] = n.unexplored[len(n.unexplored)-1]
	n.unexplored = n.unexplored[:len(n.unexplored)-1]

	nb := n.board.ResolveMove(n.color, mv)
	childColor := nextToMove(nb, n.color)
	child := newNode(nb, childColor)
	n.children[mv] = child

	var outcome board.GameOutcome
	if nb.IsTerminal() {
		outcome = nb.WinningPlayer()
	} else {
		outcome = rollout(nb, childColor, rng)
	}
	child.recordOutcome(outcome)
	return outcome
}

// simulate runs one selection/expansion/rollout/backpropagation
// traversal rooted at n and returns the game outcome it observed.
func (n *node) simulate(c float64, rng *rand.Rand) board.GameOutcome {
	if n.board.IsTerminal() {
		return n.board.WinningPlayer()
	}

	var outcome board.GameOutcome
	if len(n.unexplored) > 0 {
		outcome = n.expand(rng)
	} else {
		_, child := n.selectChild(c)
		outcome = child.simulate(c, rng)
	}
	n.recordOutcome(outcome)
	return outcome
}

// rollout plays uniformly random legal moves from b (with c to move)
// until both sides pass in succession, then reports the outcome.
func rollout(b board.Board, c board.PlayerColor, rng *rand.Rand) board.GameOutcome {
	for !b.IsTerminal() {
		moves := b.FindMoves(c).Locs()
		if len(moves) == 0 {
			c = c.Opponent()
			continue
		}
		mv := moves[rng.Intn(len(moves))]
		b = b.ResolveMove(c, mv)
		c = c.Opponent()
	}
	return b.WinningPlayer()
}
