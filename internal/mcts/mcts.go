package mcts

import (
	"log"
	"math/rand"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/engine"
)

// DefaultTraversals is the simulation count used when no time budget
// is supplied (msLeft < 0).
const DefaultTraversals = 100

// Player is a random-rollout UCT search player. It owns a search tree
// that is reused across turns via root adoption (see adopt), so
// repeated GetMove calls on the same game amortize prior search.
type Player struct {
	ExploreConstant float64

	root *node
	rng  *rand.Rand
}

// New returns an MCTS player with the standard exploration constant,
// seeded from src.
func New(src rand.Source) *Player {
	return &Player{ExploreConstant: explorationDefault, rng: rand.New(src)}
}

func (p *Player) Name() string { return "MCTSPlayer" }

// GetMove runs simulations until the time or traversal budget is
// exhausted and returns the root's most-visited child move.
func (p *Player) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	if !b.HasMoves(c) {
		return board.PassLoc
	}

	p.adopt(b, c, oppMove)

	if msLeft < 0 {
		for i := 0; i < DefaultTraversals; i++ {
			p.root.simulate(p.ExploreConstant, p.rng)
		}
	} else {
		tm := engine.NewTimeManager()
		tm.Init(msLeft, b.Empties())
		for !tm.ShouldStop() {
			p.root.simulate(p.ExploreConstant, p.rng)
		}
	}

	move, child := p.bestMove()
	p.root = child
	return move
}

// adopt descends into the subtree reached by oppMove if the current
// root's tree already explored it, otherwise starts a fresh tree
// rooted at b.
func (p *Player) adopt(b board.Board, c board.PlayerColor, oppMove board.Loc) {
	if p.root == nil {
		p.root = newNode(b, c)
		return
	}
	if oppMove.IsPass() {
		// A pass never appears as a child key (nextToMove inlines forced
		// passes when the tree is built), so the current root already
		// reflects the position after the opponent's skipped turn.
		return
	}
	if child, ok := p.root.children[oppMove]; ok && child.board == b {
		p.root = child
		return
	}
	log.Printf("mcts: opponent move %v not found in tree, reinitializing root", oppMove)
	p.root = newNode(b, c)
}

// bestMove returns the root's explored child with the highest visit
// count, falling back to an arbitrary legal move if the search budget
// was exhausted before a single simulation completed.
func (p *Player) bestMove() (board.Loc, *node) {
	var bestMove board.Loc
	var best *node
	for mv, child := range p.root.children {
		if best == nil || child.visits > best.visits {
			best = child
			bestMove = mv
		}
	}
	if best != nil {
		return bestMove, best
	}
	mv := p.root.unexplored[0]
	nb := p.root.board.ResolveMove(p.root.color, mv)
	return mv, newNode(nb, nextToMove(nb, p.root.color))
}
