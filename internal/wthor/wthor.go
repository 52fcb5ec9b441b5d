// Package wthor documents the historical WThor game-record byte
// format (http://www.ffothello.org/informatique/la-base-wthor/) and
// provides the layout constants and move codec used to build fixtures
// for code that would consume it. No bulk database ingester lives
// here; this package exists so the format is exercised by code and
// tests rather than described only in prose.
package wthor

import "github.com/hailam/othello/internal/board"

const (
	// DatabaseHeaderBytes is the length of the file-level header that
	// precedes the first game record.
	DatabaseHeaderBytes = 16

	// GameHeaderBytes is the length of each game's own header, ahead
	// of its move bytes. Bytes 6 and 7 are the game's real and
	// theoretical final scores.
	GameHeaderBytes = 8

	// MoveBytes is the number of move-encoding bytes that follow each
	// game header.
	MoveBytes = 60

	// GameRecordBytes is the total length of one game record
	// (header plus moves).
	GameRecordBytes = GameHeaderBytes + MoveBytes
)

// PassByte is the move-encoding byte reserved for a pass or, under the
// convention this module adopts, for marking the end of a game's
// recorded moves: a 0 byte terminates the record, and no further
// bytes up to MoveBytes carry state.
const PassByte byte = 0

// ParseMove decodes a single move byte into a board location. A move
// is encoded as 10*(y+1) + (x+1); ParseMove reports ok=false for
// PassByte, which callers should treat as the end of the recorded
// game rather than as a playable square.
func ParseMove(b byte) (loc board.Loc, ok bool) {
	if b == PassByte {
		return board.PassLoc, false
	}
	x := int(b)%10 - 1
	y := int(b)/10 - 1
	return board.Loc{X: x, Y: y}, true
}

// EncodeMove is ParseMove's inverse, used to build game-record byte
// fixtures in tests.
func EncodeMove(l board.Loc) byte {
	return byte(10*(l.Y+1) + (l.X + 1))
}

// GameHeaderScores extracts the real and theoretical final scores
// from a game record's header.
func GameHeaderScores(header [GameHeaderBytes]byte) (real, theoretical int) {
	return int(header[6]), int(header[7])
}
