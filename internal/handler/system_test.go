package handler

import (
	"net/http"
	"testing"
	"time"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/health", nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Status    string `json:"status"`
		Database  string `json:"database"`
		Timestamp string `json:"timestamp"`
		Env       struct {
			HasDBHost    bool `json:"hasDbHost"`
			HasJWTSecret bool `json:"hasJwtSecret"`
		} `json:"env"`
	}
	decodeJSON(t, rr, &resp)

	if resp.Status != "healthy" {
		t.Errorf("status = %q, want %q", resp.Status, "healthy")
	}
	if resp.Database != "connected" {
		t.Errorf("database = %q, want %q", resp.Database, "connected")
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
	if !resp.Env.HasJWTSecret {
		t.Error("expected hasJwtSecret true in the test env")
	}
	if resp.Env.HasDBHost {
		t.Error("expected hasDbHost false in the test env")
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	env := newTestEnv(t)
	env.store.Close()

	rr := env.do(t, http.MethodGet, "/api/health", nil)
	assertStatus(t, rr, http.StatusInternalServerError)

	var resp struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Error    string `json:"error"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Status != "unhealthy" || resp.Database != "disconnected" {
		t.Errorf("unexpected payload: %+v", resp)
	}
	if resp.Error == "" {
		t.Error("expected an error detail")
	}
}
