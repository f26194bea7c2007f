package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestMapAsset(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("europe.svg", "<svg>plain</svg>")
	writeFile("europe-detailed.svg", "<svg>detailed</svg>")
	writeFile("south-america.svg", "<svg>americas</svg>")

	deps := setupDeps(t, franceOnly())
	deps.MapsDir = dir
	r := testRouter(t, deps)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/api/maps/europe")
	if w.Code != http.StatusOK {
		t.Fatalf("europe: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.String() != "<svg>detailed</svg>" {
		t.Errorf("detailed variant not preferred: %q", w.Body.String())
	}

	// Americas is backed by the south-america asset.
	w = get("/api/maps/americas")
	if w.Code != http.StatusOK || w.Body.String() != "<svg>americas</svg>" {
		t.Errorf("americas: %d %q", w.Code, w.Body.String())
	}

	if w = get("/api/maps/asia"); w.Code != http.StatusNotFound {
		t.Errorf("missing asset: %d, want 404", w.Code)
	}
	if w = get("/api/maps/atlantis"); w.Code != http.StatusNotFound {
		t.Errorf("unknown continent: %d, want 404", w.Code)
	}
}
