// Command othello-player wraps a single in-process player behind the
// stdin/stdout tournament line protocol, so it can be driven as a
// subprocess by an external match runner. It is invoked as
//
//	othello-player [flags] <Black|White>
//
// with the color given as a single positional argument, matching the
// tournament protocol's external interface; any flags must precede it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/lineproto"
	"github.com/hailam/othello/internal/mcts"
	"github.com/hailam/othello/internal/player"
	"github.com/hailam/othello/internal/puct"
)

func main() {
	var (
		kind        = flag.String("player", "mcts", "player kind: random, mcts, puct")
		explore     = flag.Float64("explore-coeff", 4.0, "MCTS exploration constant")
		solverDepth = flag.Int("solver-depth", 10, "switch to the exact solver at this many empties or fewer (0 disables)")
		reservedMs  = flag.Int("solver-reserve-ms", 50, "time debited per turn from the base player while the solver is not yet active")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: othello-player [flags] <Black|White>")
		os.Exit(2)
	}
	colorArg := flag.Arg(0)

	color := board.Black
	switch colorArg {
	case "Black", "black":
		color = board.Black
	case "White", "white":
		color = board.White
	default:
		fmt.Fprintf(os.Stderr, "othello-player: invalid color %q, want Black or White\n", colorArg)
		os.Exit(2)
	}

	base := buildPlayer(*kind, *explore, rand.NewSource(*seed))
	var p player.Player = base
	if *solverDepth > 0 {
		p = player.NewSolverHandoff(base, *solverDepth, *reservedMs)
	}

	if err := lineproto.RunStdio(p, color); err != nil {
		log.Fatalf("othello-player: %v", err)
	}
}

func buildPlayer(kind string, explore float64, src rand.Source) player.Player {
	switch kind {
	case "random":
		return player.NewRandomPlayer(src)
	case "puct":
		p := puct.New(uniformEvaluator, src)
		return p
	default:
		m := mcts.New(src)
		m.ExploreConstant = explore
		return m
	}
}

// uniformEvaluator is the default stand-in evaluator: no trained
// network is wired into this binary, so every legal move looks
// equally promising and the position is judged balanced. Callers
// embedding a real network supply their own Evaluator instead of
// using the "puct" player kind from this command.
func uniformEvaluator(tensor [8][8][2]float32) ([64]float32, float32) {
	var logits [64]float32
	return logits, 0
}
