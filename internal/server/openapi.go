package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Runic Vine API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Runic Vine grape variety quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(map[string]struct {
		Status string `json:"status"`
	}{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// POST /api/round
	postRound, _ := r.NewOperationContext(http.MethodPost, "/api/round")
	postRound.SetSummary("Start a round")
	postRound.SetDescription("Captures the player identity, starts the countdown, and returns a round token plus the first quiz item.")
	postRound.AddReqStructure(RoundStartRequest{})
	postRound.AddRespStructure(RoundStartResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postRound.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postRound)

	// POST /api/round/again
	postAgain, _ := r.NewOperationContext(http.MethodPost, "/api/round/again")
	postAgain.SetSummary("Play again")
	postAgain.SetDescription("Starts a fresh round for the same player. The previous round's timers are stopped first. Requires Bearer token.")
	postAgain.AddRespStructure(RoundStartResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAgain.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postAgain)

	// GET /api/round/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/round/state")
	getState.SetSummary("Get round state")
	getState.SetDescription("Returns the observable round state. Requires Bearer token.")
	getState.AddRespStructure(RoundStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/round/continent
	postContinent, _ := r.NewOperationContext(http.MethodPost, "/api/round/continent")
	postContinent.SetSummary("Answer the continent stage")
	postContinent.SetDescription("Submits the continent choice for the current item. Counts the question regardless of outcome. Requires Bearer token.")
	postContinent.AddReqStructure(ContinentRequest{})
	postContinent.AddRespStructure(ContinentResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postContinent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postContinent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postContinent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postContinent)

	// POST /api/round/country
	postCountry, _ := r.NewOperationContext(http.MethodPost, "/api/round/country")
	postCountry.SetSummary("Answer the country stage")
	postCountry.SetDescription("Submits a clicked map identifier. Clicks on regions outside the quiz data are ignored without consuming the question. Requires Bearer token.")
	postCountry.AddReqStructure(CountryRequest{})
	postCountry.AddRespStructure(CountryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCountry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCountry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postCountry.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postCountry)

	// GET /api/round/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/round/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of countdown ticks, feedback, and round end. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/round/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/round/ws")
	getWS.SetSummary("WebSocket event stream")
	getWS.SetDescription("The same round events as the SSE endpoint, over a WebSocket. Pass token as query parameter.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// GET /api/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Top scores")
	getBoard.SetDescription("Returns the top N leaderboard entries (default 10, max 50).")
	getBoard.AddRespStructure([]LeaderboardEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	getBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getBoard)

	// GET /api/maps/{continent}
	getMap, _ := r.NewOperationContext(http.MethodGet, "/api/maps/{continent}")
	getMap.SetSummary("Continent map asset")
	getMap.SetDescription("Serves the SVG map for a continent, detailed variant preferred.")
	getMap.AddReqStructure(struct {
		Continent string `path:"continent"`
	}{})
	getMap.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/svg+xml"))
	getMap.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getMap)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/leaderboard
	getAdminBoard, _ := r.NewOperationContext(http.MethodGet, "/api/admin/leaderboard")
	getAdminBoard.SetSummary("Full leaderboard")
	getAdminBoard.SetDescription("Returns all persisted records including player emails. Requires admin_session cookie.")
	getAdminBoard.AddRespStructure([]AdminScoreRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	getAdminBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getAdminBoard)

	// DELETE /api/admin/leaderboard
	deleteBoard, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/leaderboard")
	deleteBoard.SetSummary("Reset leaderboard")
	deleteBoard.SetDescription("Clears the persisted leaderboard. Requires admin_session cookie.")
	deleteBoard.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteBoard)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
