package player

import (
	"bufio"
	"fmt"
	"log"
	"os/exec"

	"github.com/hailam/othello/internal/board"
)

// ExternalPlayer drives a subprocess that speaks the stdin/stdout
// tournament line protocol (see internal/lineproto), so any process
// — not just ones built from this module — can play in a game.
type ExternalPlayer struct {
	name string
	cmd  *exec.Cmd
	in   *bufio.Writer
	out  *bufio.Scanner
}

// StartExternalPlayer launches command with args as its side of the
// protocol, playing color, and blocks until its startup banner
// arrives.
func StartExternalPlayer(command string, args []string, color board.PlayerColor) (*ExternalPlayer, error) {
	cmd := exec.Command(command, append(args, color.String())...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &ExternalPlayer{
		name: command,
		cmd:  cmd,
		in:   bufio.NewWriter(stdin),
		out:  bufio.NewScanner(stdout),
	}
	if !p.out.Scan() {
		return nil, fmt.Errorf("external player %s exited before sending ready banner", command)
	}
	return p, nil
}

func (p *ExternalPlayer) Name() string { return "ExternalPlayer(" + p.name + ")" }

// GetMove writes "opp_x opp_y ms_left" and reads back "x y".
func (p *ExternalPlayer) GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc {
	fmt.Fprintf(p.in, "%d %d %d\n", oppMove.X, oppMove.Y, msLeft)
	if err := p.in.Flush(); err != nil {
		log.Printf("external player %s: write failed: %v", p.name, err)
		return board.PassLoc
	}
	if !p.out.Scan() {
		log.Printf("external player %s: no response", p.name)
		return board.PassLoc
	}
	var x, y int
	if _, err := fmt.Sscanf(p.out.Text(), "%d %d", &x, &y); err != nil {
		log.Printf("external player %s: malformed move %q", p.name, p.out.Text())
		return board.PassLoc
	}
	if x < 0 || y < 0 {
		return board.PassLoc
	}
	return board.Loc{X: x, Y: y}
}

// Close terminates the subprocess.
func (p *ExternalPlayer) Close() error {
	return p.cmd.Process.Kill()
}
