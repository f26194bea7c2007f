package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"

	"github.com/runicvine/vinequiz/internal/leaderboard"
)

// Deps carries everything the routes need. Redis is nil unless an alternate
// leaderboard backend was configured.
type Deps struct {
	Rounds      *Registry
	Broker      *Broker
	Leaderboard *leaderboard.Store
	Admin       *AdminStore
	DB          *sql.DB
	Redis       *redis.Client
	MapsDir     string
	SPADir      string
}

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Runic Vine API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.DB, deps.Redis))

	// Player routes — round resolved from the Bearer token.
	r.Route("/api", func(r chi.Router) {
		r.Post("/round", handleRoundStart(deps.Rounds))
		r.Post("/round/again", handleRoundAgain(deps.Rounds))
		r.Get("/round/state", handleRoundState(deps.Rounds))
		r.Post("/round/continent", handleContinent(deps.Rounds))
		r.Post("/round/country", handleCountry(deps.Rounds))
		r.Get("/round/events", handleEvents(deps.Rounds, deps.Broker))
		r.Get("/round/ws", handleRoundWS(logger, deps.Rounds, deps.Broker))
		r.Get("/leaderboard", handleLeaderboard(deps.Leaderboard))
		r.Get("/maps/{continent}", handleMapAsset(logger, deps.MapsDir))
	})

	// Admin routes — cookie session, bcrypt-verified.
	r.Post("/api/admin/login", handleAdminLogin(deps.Admin))
	r.Post("/api/admin/logout", handleAdminLogout(deps.Admin))
	r.Get("/api/admin/me", handleAdminMe(deps.Admin))
	r.Route("/api/admin/leaderboard", func(r chi.Router) {
		r.Use(adminAuthMiddleware(deps.Admin))
		r.Get("/", handleAdminLeaderboard(deps.Leaderboard))
		r.Delete("/", handleAdminLeaderboardReset(logger, deps.Leaderboard))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
