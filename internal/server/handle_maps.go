package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/runicvine/vinequiz/internal/geo"
)

// handleMapAsset serves the SVG map for a continent, preferring the detailed
// variant when present. A missing asset is a recoverable failure: the client
// shows an inline error and the round keeps running.
func handleMapAsset(logger *slog.Logger, mapsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		continent, ok := geo.ParseContinent(chi.URLParam(r, "continent"))
		if !ok {
			writeError(w, http.StatusNotFound, "unknown continent")
			return
		}

		for _, name := range continent.AssetCandidates() {
			path := filepath.Join(mapsDir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				w.Header().Set("Content-Type", "image/svg+xml")
				http.ServeFile(w, r, path)
				return
			}
		}

		logger.Warn("map asset missing", "continent", continent, "dir", mapsDir)
		writeError(w, http.StatusNotFound, "map asset unavailable")
	}
}
