// Command othello-driver plays one game between two in-process
// players and, unless archiving is disabled, persists the result.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/hailam/othello/internal/archive"
	"github.com/hailam/othello/internal/driver"
	"github.com/hailam/othello/internal/mcts"
	"github.com/hailam/othello/internal/player"
	"github.com/hailam/othello/internal/puct"
)

func main() {
	var (
		blackKind  = flag.String("black", "mcts", "black player kind: random, mcts, puct")
		whiteKind  = flag.String("white", "random", "white player kind: random, mcts, puct")
		msPerSide  = flag.Int("ms", 10000, "milliseconds of thinking time per side (-1 for unlimited)")
		archiveDir = flag.String("archive", "", "directory to persist the game in (empty: platform data dir; use -no-archive to disable)")
		noArchive  = flag.Bool("no-archive", false, "disable persisting the game")
	)
	flag.Parse()

	black := buildPlayer(*blackKind, rand.NewSource(1))
	white := buildPlayer(*whiteKind, rand.NewSource(2))

	var arc driver.Archiver
	if !*noArchive {
		dir := *archiveDir
		if dir == "" {
			d, err := archive.DatabaseDir()
			if err != nil {
				log.Printf("othello-driver: could not resolve archive dir: %v", err)
			} else {
				dir = d
			}
		}
		if dir != "" {
			a, err := archive.Open(dir)
			if err != nil {
				log.Printf("othello-driver: could not open archive: %v", err)
			} else {
				defer a.Close()
				arc = a
			}
		}
	}

	record := driver.PlayGame(black, white, *msPerSide, *msPerSide, arc)

	log.Printf("result: %v (black=%d white=%d) in %s", record.Outcome, record.BlackDiscs, record.WhiteDiscs, record.Duration)
}

func buildPlayer(kind string, src rand.Source) player.Player {
	switch kind {
	case "random":
		return player.NewRandomPlayer(src)
	case "puct":
		return puct.New(func(tensor [8][8][2]float32) ([64]float32, float32) {
			var logits [64]float32
			return logits, 0
		}, src)
	default:
		return mcts.New(src)
	}
}
