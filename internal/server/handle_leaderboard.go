package server

import (
	"net/http"
	"strconv"

	"github.com/runicvine/vinequiz/internal/leaderboard"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// LeaderboardEntry is the public view of a score record; the player email
// stays private to the admin surface.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	PlayerName     string `json:"name"`
	Score          int    `json:"score"`
	QuestionsAsked int    `json:"totalQuestions"`
	AccuracyPct    int    `json:"accuracy"`
	DateLabel      string `json:"date"`
}

func toEntries(records []vinequiz.ScoreRecord) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(records))
	for i, rec := range records {
		entries[i] = LeaderboardEntry{
			Rank:           i + 1,
			PlayerName:     rec.PlayerName,
			Score:          rec.Score,
			QuestionsAsked: rec.QuestionsAsked,
			AccuracyPct:    rec.AccuracyPct,
			DateLabel:      rec.DateLabel,
		}
	}
	return entries
}

func handleLeaderboard(board *leaderboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 10
		if raw := r.URL.Query().Get("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > leaderboard.Capacity {
				writeError(w, http.StatusBadRequest, "n must be between 1 and 50")
				return
			}
			n = parsed
		}

		writeJSON(w, http.StatusOK, toEntries(board.TopN(r.Context(), n)))
	}
}
