package archive

import (
	"os"
	"testing"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/driver"
)

func TestRecordAndLoadStats(t *testing.T) {
	dir, err := os.MkdirTemp("", "othello-archive-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	a, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	rec := driver.GameRecord{
		Outcome:     board.BlackWins,
		BlackDiscs:  40,
		WhiteDiscs:  24,
		BlackPlayer: "RandomPlayer",
		WhitePlayer: "MCTSPlayer",
	}
	if err := a.RecordGame(rec); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}
	if err := a.RecordGame(rec); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}

	stats, err := a.Stats("RandomPlayer", "MCTSPlayer")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Games != 2 || stats.BlackWins != 2 {
		t.Errorf("stats = %+v, want Games=2 BlackWins=2", stats)
	}
}

func TestStatsEmptyForUnknownMatchup(t *testing.T) {
	dir, err := os.MkdirTemp("", "othello-archive-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	a, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	stats, err := a.Stats("Nobody", "Nobody")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Games != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func TestDataDirCreatesDirectory(t *testing.T) {
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dir)
	}
}
