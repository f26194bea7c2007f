package server

import (
	"net/http"
	"strings"

	"github.com/runicvine/vinequiz/internal/vinequiz"
)

type RoundStartRequest struct {
	PlayerName  string `json:"playerName"`
	PlayerEmail string `json:"playerEmail"`
}

type RoundStartResponse struct {
	Token            string   `json:"token"`
	Variety          string   `json:"variety"`
	RemainingSeconds int      `json:"remainingSeconds"`
	Continents       []string `json:"continents"`
}

func handleRoundStart(rounds *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoundStartRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerName = strings.TrimSpace(req.PlayerName)
		req.PlayerEmail = strings.TrimSpace(req.PlayerEmail)
		if req.PlayerName == "" || req.PlayerEmail == "" {
			writeError(w, http.StatusBadRequest, "playerName and playerEmail are required")
			return
		}

		token, s := rounds.Start(vinequiz.Player{Name: req.PlayerName, Email: req.PlayerEmail})
		st := s.Snapshot()

		writeJSON(w, http.StatusOK, RoundStartResponse{
			Token:            token,
			Variety:          st.Variety,
			RemainingSeconds: st.RemainingSeconds,
			Continents:       continentNames(),
		})
	}
}

// handleRoundAgain starts a fresh round for the same player identity. The
// previous round's timers are stopped before the new round begins ticking.
func handleRoundAgain(rounds *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, token, err := roundFromRequest(r, rounds)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing round token")
			return
		}

		s, ok := rounds.Restart(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid or missing round token")
			return
		}
		st := s.Snapshot()

		writeJSON(w, http.StatusOK, RoundStartResponse{
			Token:            token,
			Variety:          st.Variety,
			RemainingSeconds: st.RemainingSeconds,
			Continents:       continentNames(),
		})
	}
}
