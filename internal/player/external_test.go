package player

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/othello/internal/board"
)

// newTestExternalPlayer wires an ExternalPlayer to in-memory buffers
// instead of a real subprocess, so GetMove's wire-protocol framing
// can be exercised without StartExternalPlayer spawning anything.
func newTestExternalPlayer(responses string, sink *bytes.Buffer) *ExternalPlayer {
	return &ExternalPlayer{
		name: "test",
		in:   bufio.NewWriter(sink),
		out:  bufio.NewScanner(strings.NewReader(responses)),
	}
}

func TestExternalPlayerGetMoveWritesOppMoveAndMsLeft(t *testing.T) {
	var sink bytes.Buffer
	p := newTestExternalPlayer("3 4\n", &sink)

	mv := p.GetMove(board.StartingBoard(), board.Black, board.Loc{X: 2, Y: 3}, 1500)

	if sink.String() != "2 3 1500\n" {
		t.Errorf("wrote %q, want %q", sink.String(), "2 3 1500\n")
	}
	if mv != (board.Loc{X: 3, Y: 4}) {
		t.Errorf("GetMove = %v, want (3,4)", mv)
	}
}

func TestExternalPlayerGetMoveFirstTurnIsPass(t *testing.T) {
	var sink bytes.Buffer
	p := newTestExternalPlayer("2 2\n", &sink)

	p.GetMove(board.StartingBoard(), board.Black, board.PassLoc, 1000)

	if sink.String() != "-1 -1 1000\n" {
		t.Errorf("wrote %q, want %q", sink.String(), "-1 -1 1000\n")
	}
}

func TestExternalPlayerGetMoveReturnsPassOnPassResponse(t *testing.T) {
	var sink bytes.Buffer
	p := newTestExternalPlayer("-1 -1\n", &sink)

	mv := p.GetMove(board.StartingBoard(), board.White, board.Loc{X: 0, Y: 0}, 1000)

	if !mv.IsPass() {
		t.Errorf("GetMove = %v, want pass", mv)
	}
}

func TestExternalPlayerGetMoveMalformedResponseIsPass(t *testing.T) {
	var sink bytes.Buffer
	p := newTestExternalPlayer("garbage\n", &sink)

	mv := p.GetMove(board.StartingBoard(), board.White, board.Loc{X: 0, Y: 0}, 1000)

	if !mv.IsPass() {
		t.Errorf("GetMove = %v, want pass on malformed response", mv)
	}
}

func TestExternalPlayerGetMoveNoResponseIsPass(t *testing.T) {
	var sink bytes.Buffer
	p := newTestExternalPlayer("", &sink)

	mv := p.GetMove(board.StartingBoard(), board.White, board.Loc{X: 0, Y: 0}, 1000)

	if !mv.IsPass() {
		t.Errorf("GetMove = %v, want pass on no response", mv)
	}
}

func TestExternalPlayerName(t *testing.T) {
	p := &ExternalPlayer{name: "my-bot"}
	if p.Name() != "ExternalPlayer(my-bot)" {
		t.Errorf("Name() = %q", p.Name())
	}
}
