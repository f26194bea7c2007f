package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/runicvine/vinequiz/internal/game"
	"github.com/runicvine/vinequiz/internal/leaderboard"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// Registry owns the live rounds, keyed by opaque round token. It is the one
// place sessions are created and replaced, which is where the no-stale-timer
// rule is enforced: an old session is always stopped before a replacement is
// started under the same token.
type Registry struct {
	base   game.Config
	board  *leaderboard.Store
	broker *Broker
	logger *slog.Logger

	mu     sync.Mutex
	rounds map[string]*game.Session
}

func NewRegistry(base game.Config, board *leaderboard.Store, broker *Broker, logger *slog.Logger) *Registry {
	return &Registry{
		base:   base,
		board:  board,
		broker: broker,
		logger: logger,
		rounds: make(map[string]*game.Session),
	}
}

// Start creates and starts a fresh round for player, returning its token.
func (r *Registry) Start(player vinequiz.Player) (string, *game.Session) {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictEndedLocked()

	s := r.newSessionLocked(token, player)
	r.rounds[token] = s
	s.Start()
	return token, s
}

// Restart replaces the round behind token with a fresh one for the same
// player ("play again"). The old session's countdown and pending advance are
// stopped before the new session exists, so none of its scheduled work can
// touch the new round.
func (r *Registry) Restart(token string) (*game.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.rounds[token]
	if !ok {
		return nil, false
	}
	old.Stop()

	s := r.newSessionLocked(token, old.Player())
	r.rounds[token] = s
	s.Start()
	return s, true
}

// Get looks up a live round by token.
func (r *Registry) Get(token string) (*game.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rounds[token]
	return s, ok
}

func (r *Registry) newSessionLocked(token string, player vinequiz.Player) *game.Session {
	cfg := r.base
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	cfg.Publish = func(e game.Event) {
		r.broker.Publish(token, e)
	}
	cfg.OnEnded = func(p vinequiz.Player, score, questions int) {
		rec := vinequiz.NewScoreRecord(uuid.NewString(), p, score, questions, cfg.Clock())
		if err := r.board.Record(context.Background(), rec); err != nil {
			// The round outcome is simply not durably recorded; the
			// end-of-round flow carries on regardless.
			r.logger.Error("recording round result", "error", err, "player", p.Name)
		}
	}
	return game.NewSession(cfg, player)
}

// evictEndedLocked drops finished rounds so abandoned tokens don't pile up.
func (r *Registry) evictEndedLocked() {
	for token, s := range r.rounds {
		if s.Snapshot().Phase == vinequiz.PhaseEnded {
			delete(r.rounds, token)
		}
	}
}
