package archive

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/othello/internal/board"
	"github.com/hailam/othello/internal/driver"
)

const (
	keyNextID = "next_id"
	keyPrefix = "game:"
)

// MatchupStats aggregates results for one pairing of player kinds.
type MatchupStats struct {
	Games     int `json:"games"`
	BlackWins int `json:"black_wins"`
	WhiteWins int `json:"white_wins"`
	Draws     int `json:"draws"`
}

// Archive wraps BadgerDB for persistent storage of completed games
// and the running win/loss/draw tally per player-kind matchup.
type Archive struct {
	db *badger.DB
}

// Open opens (creating if necessary) the archive database under dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// RecordGame persists rec under a fresh monotonically increasing key
// and folds its outcome into the matchup's running stats.
func (a *Archive) RecordGame(rec driver.GameRecord) error {
	return a.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn)
		if err != nil {
			return err
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := txn.Set(gameKey(id), data); err != nil {
			return err
		}

		stats, err := loadStats(txn, rec.BlackPlayer, rec.WhitePlayer)
		if err != nil {
			return err
		}
		stats.Games++
		switch rec.Outcome {
		case board.BlackWins:
			stats.BlackWins++
		case board.WhiteWins:
			stats.WhiteWins++
		default:
			stats.Draws++
		}
		return saveStats(txn, rec.BlackPlayer, rec.WhitePlayer, stats)
	})
}

// Stats returns the running tally for a matchup, or a zero value if
// the pairing has never been recorded.
func (a *Archive) Stats(blackKind, whiteKind string) (MatchupStats, error) {
	var stats MatchupStats
	err := a.db.View(func(txn *badger.Txn) error {
		s, err := loadStats(txn, blackKind, whiteKind)
		if err != nil {
			return err
		}
		stats = *s
		return nil
	})
	return stats, err
}

func gameKey(id uint64) []byte {
	var buf [8 + len(keyPrefix)]byte
	copy(buf[:], keyPrefix)
	binary.BigEndian.PutUint64(buf[len(keyPrefix):], id)
	return buf[:]
}

func statsKey(blackKind, whiteKind string) []byte {
	return []byte(fmt.Sprintf("stats:%s:%s", blackKind, whiteKind))
}

func nextID(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(keyNextID))
	var id uint64
	if err == nil {
		err = item.Value(func(val []byte) error {
			id = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
	} else if err != badger.ErrKeyNotFound {
		return 0, err
	}

	var next [8]byte
	binary.BigEndian.PutUint64(next[:], id+1)
	if err := txn.Set([]byte(keyNextID), next[:]); err != nil {
		return 0, err
	}
	return id, nil
}

func loadStats(txn *badger.Txn, blackKind, whiteKind string) (*MatchupStats, error) {
	stats := &MatchupStats{}
	item, err := txn.Get(statsKey(blackKind, whiteKind))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}

func saveStats(txn *badger.Txn, blackKind, whiteKind string, stats *MatchupStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return txn.Set(statsKey(blackKind, whiteKind), data)
}
