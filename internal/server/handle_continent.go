package server

import (
	"errors"
	"net/http"

	"github.com/runicvine/vinequiz/internal/game"
	"github.com/runicvine/vinequiz/internal/geo"
)

type ContinentRequest struct {
	Continent string `json:"continent"`
}

type ContinentResponse struct {
	Ignored  bool   `json:"ignored,omitempty"`
	Correct  bool   `json:"correct"`
	Expected string `json:"expected,omitempty"`
	MapAsset string `json:"mapAsset,omitempty"`
}

func handleContinent(rounds *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, err := roundFromRequest(r, rounds)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing round token")
			return
		}

		var req ContinentRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		choice, ok := geo.ParseContinent(req.Continent)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown continent")
			return
		}

		res, err := s.SubmitContinent(choice)
		if errors.Is(err, game.ErrWrongPhase) {
			writeError(w, http.StatusConflict, "continent already answered for this item")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if res.Ignored {
			// Round ended while the click was in flight.
			writeJSON(w, http.StatusOK, ContinentResponse{Ignored: true})
			return
		}

		resp := ContinentResponse{Correct: res.Correct}
		if res.Correct {
			// The client now renders the continent map.
			resp.MapAsset = "/api/maps/" + string(res.Continent)
		} else {
			resp.Expected = string(res.Expected)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
