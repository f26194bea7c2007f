package game

import (
	"log/slog"
	"math/rand"

	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// Sequencer draws quiz items uniformly at random, never repeating an item
// within a round until the whole pool has been shown. The random source is
// injected so tests can fix the draw order.
type Sequencer struct {
	pool   []vinequiz.Item
	rng    *rand.Rand
	logger *slog.Logger
}

// NewSequencer builds a sequencer over a non-empty pool. An empty pool is a
// configuration error and fails fast at startup, never mid-round.
func NewSequencer(pool []vinequiz.Item, src rand.Source, logger *slog.Logger) (*Sequencer, error) {
	if len(pool) == 0 {
		return nil, vinequiz.ErrNoItems
	}
	return &Sequencer{
		pool:   pool,
		rng:    rand.New(src),
		logger: logger,
	}, nil
}

// Next picks a random item whose key is not in used, marks it used, and
// returns it. When every pool item has been used, the set is cleared first
// and the draw restarts over the full pool; exhaustion is an expected event,
// not an error.
func (s *Sequencer) Next(used map[string]struct{}) vinequiz.Item {
	candidates := make([]vinequiz.Item, 0, len(s.pool))
	for _, item := range s.pool {
		if _, ok := used[item.Key()]; !ok {
			candidates = append(candidates, item)
		}
	}

	if len(candidates) == 0 {
		s.logger.Info("question pool exhausted, recycling", "pool_size", len(s.pool))
		clear(used)
		candidates = s.pool
	}

	item := candidates[s.rng.Intn(len(candidates))]
	used[item.Key()] = struct{}{}
	return item
}
