package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/runicvine/vinequiz/internal/game"
)

type CountryRequest struct {
	MapID string `json:"mapId"`
}

type CountryResponse struct {
	Ignored bool   `json:"ignored,omitempty"`
	Correct bool   `json:"correct"`
	Country string `json:"country,omitempty"`
}

func handleCountry(rounds *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, err := roundFromRequest(r, rounds)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing round token")
			return
		}

		var req CountryRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.MapID = strings.TrimSpace(req.MapID)
		if req.MapID == "" {
			writeError(w, http.StatusBadRequest, "mapId is required")
			return
		}

		res, err := s.SubmitCountry(req.MapID)
		if errors.Is(err, game.ErrWrongPhase) {
			writeError(w, http.StatusConflict, "no country stage is open")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, CountryResponse{
			Ignored: res.Ignored,
			Correct: res.Correct,
			Country: res.Country,
		})
	}
}
