// Package puct implements a PUCT (AlphaZero-style) search player that
// consumes an externally supplied policy/value evaluator.
package puct

import (
	"math"

	"github.com/hailam/othello/internal/board"
)

// Evaluator scores a position from the perspective of the side to
// move: a board tensor (mine, opp planes, both relative to that side)
// goes in, raw policy logits over all 64 squares and a scalar value
// in [-1, 1] come out. Illegal squares in the policy are masked by
// the caller before use.
type Evaluator func(tensor [8][8][2]float32) (policyLogits [64]float32, value float32)

// node is one position in the PUCT tree. valueSum accumulates scalar
// values in [-1, 1] from the perspective of color. children is nil
// until the node is first visited.
type node struct {
	board    board.Board
	color    board.PlayerColor
	prior    float64
	visits   int
	valueSum float64

	children map[board.Loc]*node
}

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

// terminalValue returns the fixed outcome of a terminal board from
// color's perspective: +1 win, 0 draw, -1 loss.
func terminalValue(b board.Board, color board.PlayerColor) float64 {
	outcome := b.WinningPlayer()
	winner, isWin := outcome.Winner()
	if !isWin {
		return 0
	}
	if winner == color {
		return 1
	}
	return -1
}

func buildTensor(b board.Board, color board.PlayerColor) [8][8][2]float32 {
	mine, opp := b.PlayerView(color)
	var t [8][8][2]float32
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			l := board.Loc{X: x, Y: y}
			if mine.IsSet(l) {
				t[y][x][0] = 1
			}
			if opp.IsSet(l) {
				t[y][x][1] = 1
			}
		}
	}
	return t
}

// softmaxPriors normalizes logits restricted to legal moves, in the
// same order as legal.
func softmaxPriors(logits [64]float32, legal []board.Loc) []float64 {
	priors := make([]float64, len(legal))
	maxLogit := math.Inf(-1)
	for _, l := range legal {
		v := float64(logits[l.Index()])
		if v > maxLogit {
			maxLogit = v
		}
	}
	var sum float64
	for i, l := range legal {
		v := math.Exp(float64(logits[l.Index()]) - maxLogit)
		priors[i] = v
		sum += v
	}
	if sum == 0 {
		for i := range priors {
			priors[i] = 1.0 / float64(len(priors))
		}
		return priors
	}
	for i := range priors {
		priors[i] /= sum
	}
	return priors
}

// expand evaluates the node's position, builds one child per legal
// move with its policy prior, and returns the network's value.
func (n *node) expand(eval Evaluator) float64 {
	logits, value := eval(buildTensor(n.board, n.color))
	legal := n.board.FindMoves(n.color).Locs()
	priors := softmaxPriors(logits, legal)

	n.children = make(map[board.Loc]*node, len(legal))
	for i, mv := range legal {
		nb := n.board.ResolveMove(n.color, mv)
		childColor := nextToMove(nb, n.color)
		n.children[mv] = &node{board: nb, color: childColor, prior: priors[i]}
	}
	return float64(value)
}

const cpuctDefault = 1.5

// selectChild picks the child maximizing the PUCT score.
func (n *node) selectChild(cpuct float64) (board.Loc, *node) {
	var bestMove board.Loc
	var best *node
	bestScore := math.Inf(-1)
	sqrtParent := math.Sqrt(float64(n.visits))
	for mv, child := range n.children {
		q := 0.0
		if child.visits > 0 {
			q = -child.valueSum / float64(child.visits)
		}
		score := q + cpuct*child.prior*sqrtParent/(1+float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = child
			bestMove = mv
		}
	}
	return bestMove, best
}

// simulate runs one selection/expansion/backpropagation traversal and
// returns the resulting value from n.color's perspective.
func (n *node) simulate(eval Evaluator, cpuct float64) float64 {
	var v float64
	switch {
	case n.board.IsTerminal():
		v = terminalValue(n.board, n.color)
	case n.children == nil:
		v = n.expand(eval)
		n.visits = 1
		n.valueSum = v
		return v
	default:
		_, child := n.selectChild(cpuct)
		cv := child.simulate(eval, cpuct)
		if child.color == n.color {
			v = cv
		} else {
			v = -cv
		}
	}
	n.visits++
	n.valueSum += v
	return v
}
