package server

import (
	"log/slog"
	"net/http"

	"github.com/runicvine/vinequiz/internal/leaderboard"
	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// AdminScoreRecord exposes the full record, email included, to admins.
type AdminScoreRecord struct {
	Rank int `json:"rank"`
	vinequiz.ScoreRecord
}

func handleAdminLeaderboard(board *leaderboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := board.All(r.Context())
		out := make([]AdminScoreRecord, len(records))
		for i, rec := range records {
			out[i] = AdminScoreRecord{Rank: i + 1, ScoreRecord: rec}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleAdminLeaderboardReset(logger *slog.Logger, board *leaderboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := board.Reset(r.Context()); err != nil {
			logger.Error("resetting leaderboard", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
