package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/runicvine/vinequiz/internal/game"
)

var errNoSession = errors.New("no valid round session")

// roundFromRequest resolves the Bearer token to a live round.
func roundFromRequest(r *http.Request, rounds *Registry) (*game.Session, string, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return nil, "", errNoSession
	}
	s, ok := rounds.Get(token)
	if !ok {
		return nil, "", errNoSession
	}
	return s, token, nil
}
