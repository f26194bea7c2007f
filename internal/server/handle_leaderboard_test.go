package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/runicvine/vinequiz/internal/vinequiz"
)

func TestLeaderboardTopN(t *testing.T) {
	deps := setupDeps(t, franceOnly())
	r := testRouter(t, deps)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 15; i++ {
		rec := vinequiz.NewScoreRecord(
			fmt.Sprintf("r%d", i),
			vinequiz.Player{Name: fmt.Sprintf("player-%d", i), Email: "p@example.com"},
			i, 20, now.Add(time.Duration(i)*time.Second),
		)
		if err := deps.Leaderboard.Record(ctx, rec); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: %d: %s", w.Code, w.Body.String())
	}
	var entries []LeaderboardEntry
	json.NewDecoder(w.Body).Decode(&entries)
	if len(entries) != 10 {
		t.Fatalf("entries = %d, want default 10", len(entries))
	}
	if entries[0].Score != 14 || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want score 14 at rank 1", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("entries not sorted by score at %d", i)
		}
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard?n=3", nil))
	entries = nil
	json.NewDecoder(w.Body).Decode(&entries)
	if len(entries) != 3 {
		t.Errorf("entries = %d, want 3", len(entries))
	}
}

func TestLeaderboardValidatesN(t *testing.T) {
	r := testRouter(t, setupDeps(t, franceOnly()))

	for _, raw := range []string{"0", "-1", "51", "abc"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard?n="+raw, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("n=%s: %d, want 400", raw, w.Code)
		}
	}
}

func TestLeaderboardHidesEmail(t *testing.T) {
	deps := setupDeps(t, franceOnly())
	r := testRouter(t, deps)

	rec := vinequiz.NewScoreRecord("r1", vinequiz.Player{Name: "Maria", Email: "maria@example.com"}, 3, 4, time.Now())
	if err := deps.Leaderboard.Record(context.Background(), rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	var raw []map[string]any
	json.NewDecoder(w.Body).Decode(&raw)
	if len(raw) != 1 {
		t.Fatalf("entries = %d, want 1", len(raw))
	}
	if _, ok := raw[0]["email"]; ok {
		t.Error("public leaderboard must not expose player emails")
	}
	if raw[0]["accuracy"] != float64(75) {
		t.Errorf("accuracy = %v, want 75", raw[0]["accuracy"])
	}
}
