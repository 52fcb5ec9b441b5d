package puct

import (
	"log"
	"math/rand"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/engine"
)

// DefaultSimsPerTurn is used when no time budget is supplied.
const DefaultSimsPerTurn = 400

// DefaultTimeBuffer is a headroom margin, in milliseconds, for
// evaluator latency. GetMove does not apply it: the time-budgeted
// search loop withholds only the engine package's own buffer.
const DefaultTimeBuffer = 80

// Player is a PUCT search player driven by an externally supplied
// evaluator. Like mcts.Player it reuses its tree across turns via
// root adoption.
type Player struct {
	Eval          Evaluator
	Cpuct         float64
	SimsPerTurn   int
	Deterministic bool // pick argmax visits instead of sampling

	root *node
	rng  *rand.Rand
}

// New returns a PUCT player backed by eval.
func New(eval Evaluator, src rand.Source) *Player {
	return &Player{
		Eval:        eval,
		Cpuct:       cpuctDefault,
		SimsPerTurn: DefaultSimsPerTurn,
		rng:         rand.New(src),
	}
}

func (p *Player) Name() string { return "PUCTPlayer" }

func (p *Player) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	if !b.HasMoves(c) {
		return board.PassLoc
	}

	p.adopt(b, c, oppMove)

	if msLeft < 0 {
		sims := p.SimsPerTurn
		if sims <= 0 {
			sims = DefaultSimsPerTurn
		}
		for i := 0; i < sims; i++ {
			p.root.simulate(p.Eval, p.Cpuct)
		}
	} else {
		tm := engine.NewTimeManager()
		tm.Init(msLeft, b.Empties())
		for !tm.ShouldStop() {
			p.root.simulate(p.Eval, p.Cpuct)
		}
	}

	move, child := p.chooseMove()
	p.root = child
	return move
}

func (p *Player) adopt(b board.Board, c board.PlayerColor, oppMove board.Loc) {
	if p.root == nil {
		p.root = &node{board: b, color: c}
		return
	}
	if oppMove.IsPass() {
		// A pass never appears as a child key (nextToMove inlines forced
		// passes when the tree is built), so the current root already
		// reflects the position after the opponent's skipped turn.
		return
	}
	if p.root.children != nil {
		if child, ok := p.root.children[oppMove]; ok && child.board == b {
			if child.visits == 0 {
				log.Printf("puct: adopted subtree for opponent move %v has no visits", oppMove)
			}
			p.root = child
			return
		}
	}
	log.Printf("puct: opponent move %v not found in tree, reinitializing root", oppMove)
	p.root = &node{board: b, color: c}
}

// chooseMove picks a root child either deterministically (max visits)
// or by sampling proportional to visit counts.
func (p *Player) chooseMove() (board.Loc, *node) {
	if p.root.children == nil {
		// No simulation budget produced even one expansion: evaluate
		// once now so there is something to move into.
		p.root.simulate(p.Eval, p.Cpuct)
	}

	if p.Deterministic {
		var bestMove board.Loc
		var best *node
		for mv, child := range p.root.children {
			if best == nil || child.visits > best.visits {
				best = child
				bestMove = mv
			}
		}
		return bestMove, best
	}

	total := 0
	for _, child := range p.root.children {
		total += child.visits
	}
	if total == 0 {
		for mv, child := range p.root.children {
			return mv, child
		}
	}
	r := p.rng.Intn(total)
	for mv, child := range p.root.children {
		if r < child.visits {
			return mv, child
		}
		r -= child.visits
	}
	// Unreachable given total > 0, but keep a deterministic fallback.
	for mv, child := range p.root.children {
		return mv, child
	}
	return board.PassLoc, nil
}
