package server

import (
	"net/http"

	"github.com/runicvine/vinequiz/internal/geo"
)

type RoundStateResponse struct {
	Phase            string   `json:"phase"`
	Variety          string   `json:"variety"`
	Score            int      `json:"score"`
	QuestionsAsked   int      `json:"questionsAsked"`
	RemainingSeconds int      `json:"remainingSeconds"`
	Continents       []string `json:"continents"`
}

func continentNames() []string {
	cs := geo.Continents()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return names
}

func handleRoundState(rounds *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, err := roundFromRequest(r, rounds)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing round token")
			return
		}

		st := s.Snapshot()
		writeJSON(w, http.StatusOK, RoundStateResponse{
			Phase:            string(st.Phase),
			Variety:          st.Variety,
			Score:            st.Score,
			QuestionsAsked:   st.QuestionsAsked,
			RemainingSeconds: st.RemainingSeconds,
			Continents:       continentNames(),
		})
	}
}
