package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	r := testRouter(t, setupDeps(t, franceOnly()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: %d: %s", w.Code, w.Body.String())
	}

	var checks map[string]struct {
		Status string `json:"status"`
	}
	json.NewDecoder(w.Body).Decode(&checks)
	if checks["sqlite"].Status != "ok" {
		t.Errorf("sqlite status = %q, want ok", checks["sqlite"].Status)
	}
	if _, ok := checks["redis"]; ok {
		t.Error("redis should not be reported when not configured")
	}
}
