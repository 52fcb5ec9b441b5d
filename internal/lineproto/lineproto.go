// Package lineproto implements the tournament line protocol: a
// player process reads "opp_x opp_y ms_left" lines from stdin and
// writes its own move as "x y" to stdout, so it can be driven as a
// subprocess by an external match runner.
package lineproto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/player"
)

// overrun is the grace period granted to a player beyond its own
// reported ms_left before the turn is forced to a pass, the same role
// the teacher's UCI.handleStop plays for a search that ignores its
// time budget: the engine is expected to police itself, this is a
// last-resort backstop.
const overrun = 200 * time.Millisecond

// Run drives p as color for one game over in/out, writing diagnostics
// to errOut. It blocks until in is closed, a malformed line is read
// or the opponent's move is illegal; it returns a non-nil error in
// the last two cases and nil on a clean EOF. Each turn's move search runs on its
// own goroutine, mirroring the teacher's UCI.handleGo/handleStop
// split, so a player that overruns its budget is forced to pass
// rather than stalling the protocol loop indefinitely.
func Run(p player.Player, color board.PlayerColor, in io.Reader, out io.Writer, errOut io.Writer) error {
	fmt.Fprintf(out, "Player ready: %s (%s)\n", p.Name(), color)

	b := board.StartingBoard()
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		oppMove, msLeft, err := parseTurn(line)
		if err != nil {
			fmt.Fprintf(errOut, "lineproto: malformed input %q: %v\n", line, err)
			return err
		}

		if !oppMove.IsPass() {
			opp := color.Opponent()
			if !b.FindMoves(opp).IsSet(oppMove) {
				fmt.Fprintf(errOut, "lineproto: opponent move %v is illegal\n", oppMove)
				return fmt.Errorf("illegal opponent move %v", oppMove)
			}
			b = b.ResolveMove(opp, oppMove)
		}

		if !b.HasMoves(color) {
			fmt.Fprintln(out, "-1 -1")
			continue
		}

		mv := searchWithDeadline(p, b, color, oppMove, msLeft, errOut)
		if !mv.IsPass() {
			b = b.ResolveMove(color, mv)
			fmt.Fprintf(out, "%d %d\n", mv.X, mv.Y)
		} else {
			fmt.Fprintln(out, "-1 -1")
		}
	}
	return nil
}

// searchWithDeadline runs p.GetMove on its own goroutine and returns
// its result, unless msLeft (plus overrun) elapses first, in which
// case it logs a warning and returns a pass. The search goroutine is
// abandoned, not killed — Player implementations are expected to
// police their own budget via internal/engine.TimeManager, so this
// is reached only when one does not.
func searchWithDeadline(p player.Player, b board.Board, color board.PlayerColor, oppMove board.Loc, msLeft int, errOut io.Writer) board.Loc {
	resultCh := make(chan board.Loc, 1)
	go func() {
		resultCh <- p.GetMove(b, color, oppMove, msLeft)
	}()

	if msLeft < 0 {
		return <-resultCh
	}

	select {
	case mv := <-resultCh:
		return mv
	case <-time.After(time.Duration(msLeft)*time.Millisecond + overrun):
		fmt.Fprintf(errOut, "lineproto: %s exceeded its time budget, forcing a pass\n", p.Name())
		return board.PassLoc
	}
}

// parseTurn parses "opp_x opp_y ms_left". A negative opp_x means the
// opponent passed (or this is the game's first turn).
func parseTurn(line string) (oppMove board.Loc, msLeft int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return board.PassLoc, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.PassLoc, 0, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.PassLoc, 0, err
	}
	ms, err := strconv.Atoi(fields[2])
	if err != nil {
		return board.PassLoc, 0, err
	}
	if x < 0 || y < 0 {
		return board.PassLoc, ms, nil
	}
	return board.Loc{X: x, Y: y}, ms, nil
}

// RunStdio is the convenience entry point cmd/othello-player uses.
func RunStdio(p player.Player, color board.PlayerColor) error {
	return Run(p, color, os.Stdin, os.Stdout, os.Stderr)
}
