// Package driver alternates two players through a complete game,
// enforcing per-side time budgets and recording the result.
package driver

import (
	"log"
	"time"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/player"
)

// MoveRecord is one ply of a played game, including explicit passes.
type MoveRecord struct {
	Color board.PlayerColor
	Loc   board.Loc
}

// GameRecord is the persisted form of one completed game.
type GameRecord struct {
	Moves       []MoveRecord
	Outcome     board.GameOutcome
	BlackDiscs  int
	WhiteDiscs  int
	BlackPlayer string
	WhitePlayer string
	Duration    time.Duration
}

// Archiver persists a finished game. Implementations must not block
// the caller on failure; PlayGame logs and continues if RecordGame
// returns an error.
type Archiver interface {
	RecordGame(GameRecord) error
}

// PlayGame alternates black and white from the standard opening,
// starting with blackMs/whiteMs milliseconds on each side's clock
// (-1 for unlimited). Two consecutive passes end the game normally;
// exceeding a time budget or returning an illegal move forfeits that
// side. If archive is non-nil the finished record is handed to it.
func PlayGame(black, white player.Player, blackMs, whiteMs int, archive Archiver) GameRecord {
	start := time.Now()
	b := board.StartingBoard()
	c := board.Black

	remaining := map[board.PlayerColor]int{board.Black: blackMs, board.White: whiteMs}
	players := map[board.PlayerColor]player.Player{board.Black: black, board.White: white}

	var moves []MoveRecord
	var oppMove = board.PassLoc
	justPassed := false
	forfeited, forfeitedColor := false, board.Black

game:
	for {
		if !b.HasMoves(c) {
			moves = append(moves, MoveRecord{Color: c, Loc: board.PassLoc})
			if justPassed {
				break
			}
			justPassed = true
			oppMove = board.PassLoc
			c = c.Opponent()
			continue
		}
		justPassed = false

		p := players[c]
		ms := remaining[c]
		t0 := time.Now()
		mv := p.GetMove(b, c, oppMove, ms)
		elapsed := time.Since(t0)

		if ms >= 0 {
			remaining[c] -= int(elapsed.Milliseconds())
			if remaining[c] < 0 {
				log.Printf("driver: %s forfeits on time", c)
				forfeited, forfeitedColor = true, c
				break game
			}
		}
		if !b.FindMoves(c).IsSet(mv) {
			log.Printf("driver: %s played illegal move %v, forfeiting", c, mv)
			forfeited, forfeitedColor = true, c
			break game
		}

		b = b.ResolveMove(c, mv)
		moves = append(moves, MoveRecord{Color: c, Loc: mv})
		oppMove = mv
		c = c.Opponent()
	}

	outcome := b.WinningPlayer()
	if forfeited {
		if forfeitedColor == board.Black {
			outcome = board.WhiteWins
		} else {
			outcome = board.BlackWins
		}
	}

	record := GameRecord{
		Moves:       moves,
		Outcome:     outcome,
		BlackDiscs:  b.Black.PopCount(),
		WhiteDiscs:  b.White.PopCount(),
		BlackPlayer: black.Name(),
		WhitePlayer: white.Name(),
		Duration:    time.Since(start),
	}

	if archive != nil {
		if err := archive.RecordGame(record); err != nil {
			log.Printf("driver: failed to archive game: %v", err)
		}
	}
	return record
}
