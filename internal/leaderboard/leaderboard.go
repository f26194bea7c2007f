// Package leaderboard ranks and persists finished rounds. The table lives as
// a single JSON blob in the key-value store; persistence trouble degrades to
// an empty table rather than ever blocking the end-of-round flow.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/runicvine/vinequiz/internal/kv"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// Capacity bounds the persisted table.
const Capacity = 50

// scoresKey is the fixed key the serialized table lives under.
const scoresKey = "vinequiz:scores"

type Store struct {
	kv     kv.Store
	logger *slog.Logger
}

func NewStore(store kv.Store, logger *slog.Logger) *Store {
	return &Store{kv: store, logger: logger}
}

// Less is the table's ordering: score descending, then accuracy descending,
// then earlier submission first — the first player to reach a score keeps
// the higher rank over later duplicates.
func Less(a, b vinequiz.ScoreRecord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.AccuracyPct != b.AccuracyPct {
		return a.AccuracyPct > b.AccuracyPct
	}
	return a.CreatedAtMs < b.CreatedAtMs
}

// Record appends entry, re-sorts, truncates to capacity, and persists.
func (s *Store) Record(ctx context.Context, entry vinequiz.ScoreRecord) error {
	records := s.load(ctx)
	records = append(records, entry)
	sort.SliceStable(records, func(i, j int) bool { return Less(records[i], records[j]) })
	if len(records) > Capacity {
		records = records[:Capacity]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}
	if err := s.kv.Set(ctx, scoresKey, string(data)); err != nil {
		return fmt.Errorf("persisting leaderboard: %w", err)
	}
	return nil
}

// TopN returns the first n records of the current ordering without mutating
// persisted state.
func (s *Store) TopN(ctx context.Context, n int) []vinequiz.ScoreRecord {
	records := s.load(ctx)
	if n < len(records) {
		records = records[:n]
	}
	return records
}

// All returns the full persisted table.
func (s *Store) All(ctx context.Context) []vinequiz.ScoreRecord {
	return s.load(ctx)
}

// Reset clears the table.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Set(ctx, scoresKey, "[]"); err != nil {
		return fmt.Errorf("resetting leaderboard: %w", err)
	}
	return nil
}

// load reads the persisted table. Absent or unparseable state is an empty
// table, never an error surfaced to the caller.
func (s *Store) load(ctx context.Context) []vinequiz.ScoreRecord {
	raw, err := s.kv.Get(ctx, scoresKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("reading leaderboard, treating as empty", "error", err)
		return nil
	}

	var records []vinequiz.ScoreRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Error("corrupt leaderboard state, treating as empty", "error", err)
		return nil
	}
	return records
}
