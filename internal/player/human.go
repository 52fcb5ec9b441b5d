package player

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hailam/othello/internal/board"
)

// HumanPlayer prompts on out and reads algebraic-notation moves from
// in, re-prompting on illegal input.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanPlayer wraps the given input/output streams.
func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string { return "HumanPlayer" }

func (p *HumanPlayer) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	legal := b.FindMoves(c)
	if legal == 0 {
		return board.PassLoc
	}
	for {
		fmt.Fprintf(p.out, "%s to move, legal: %v\n> ", c, legal.Locs())
		if !p.in.Scan() {
			return board.PassLoc
		}
		l, err := board.ParseLoc(p.in.Text())
		if err != nil || !legal.IsSet(l) {
			fmt.Fprintln(p.out, "illegal move, try again")
			continue
		}
		return l
	}
}
