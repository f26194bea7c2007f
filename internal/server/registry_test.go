package server

import (
	"context"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/runicvine/vinequiz/internal/database"
	"github.com/runicvine/vinequiz/internal/game"
	"github.com/runicvine/vinequiz/internal/geo"
	"github.com/runicvine/vinequiz/internal/kv"
	"github.com/runicvine/vinequiz/internal/leaderboard"
	"github.com/runicvine/vinequiz/internal/migrations"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// fastRegistry runs real countdowns compressed to a few milliseconds so a
// round actually expires within the test.
func fastRegistry(t *testing.T) (*Registry, *leaderboard.Store) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	logger := slog.Default()
	pool := franceOnly()
	resolver, _ := geo.New(pool)
	sequencer, err := game.NewSequencer(pool, rand.NewSource(1), logger)
	if err != nil {
		t.Fatalf("sequencer: %v", err)
	}

	board := leaderboard.NewStore(kv.NewSQLiteStore(db), logger)
	rounds := NewRegistry(game.Config{
		Resolver:      resolver,
		Sequencer:     sequencer,
		Logger:        logger,
		RoundSeconds:  10,
		TickInterval:  2 * time.Millisecond,
		FeedbackDelay: time.Hour,
	}, board, NewBroker(), logger)
	return rounds, board
}

func TestRegistryRecordsExpiredRound(t *testing.T) {
	rounds, board := fastRegistry(t)

	token, s := rounds.Start(vinequiz.Player{Name: "Maria", Email: "maria@example.com"})
	s.SubmitContinent(geo.Europe)
	s.SubmitCountry("France")

	deadline := time.After(time.Second)
	for {
		if recs := board.All(context.Background()); len(recs) == 1 {
			rec := recs[0]
			if rec.Score != 1 || rec.QuestionsAsked != 1 || rec.PlayerName != "Maria" {
				t.Fatalf("record = %+v", rec)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("expired round never recorded to leaderboard")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// A later Start evicts the finished round.
	rounds.Start(vinequiz.Player{Name: "Other", Email: "o@example.com"})
	if _, ok := rounds.Get(token); ok {
		t.Error("ended round should have been evicted")
	}
}

func TestRegistryRestartReplacesSession(t *testing.T) {
	rounds, _ := fastRegistry(t)

	token, old := rounds.Start(vinequiz.Player{Name: "Maria", Email: "maria@example.com"})
	old.SubmitContinent(geo.Europe)

	fresh, ok := rounds.Restart(token)
	if !ok {
		t.Fatal("restart failed for live token")
	}
	if fresh == old {
		t.Fatal("restart must create a new session")
	}
	if st := fresh.Snapshot(); st.QuestionsAsked != 0 || st.Phase != vinequiz.PhaseAwaitingContinent {
		t.Errorf("fresh session state = %+v", st)
	}
	if got, _ := rounds.Get(token); got != fresh {
		t.Error("token should resolve to the replacement session")
	}

	if _, ok := rounds.Restart("unknown-token"); ok {
		t.Error("restart of unknown token should fail")
	}
}
