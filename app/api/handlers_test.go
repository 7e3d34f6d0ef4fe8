package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ualireza82-tech/newswire/app/broadcast"
	"github.com/ualireza82-tech/newswire/app/cfg"
	"github.com/ualireza82-tech/newswire/app/scheduler"
)

type MockStatusSource struct {
	status scheduler.Status
}

func (m *MockStatusSource) Status() scheduler.Status {
	return m.status
}

func newTestServer(t *testing.T, status scheduler.Status) *httptest.Server {
	t.Helper()

	cfg.Set(&cfg.Cfg{Version: "test"})

	handler := NewHandler(&MockStatusSource{status: status}, broadcast.NewHub())
	srv := httptest.NewServer(NewServer(handler))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, scheduler.Status{})

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if health.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", health.Status)
	}
	if health.Version != "test" {
		t.Errorf("Expected version 'test', got '%s'", health.Version)
	}
}

func TestGetStatus(t *testing.T) {
	lastCycle := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	srv := newTestServer(t, scheduler.Status{
		Publishers:     6,
		Sources:        8,
		DedupSize:      42,
		LastCycleStart: lastCycle,
	})

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if status.Publishers != 6 {
		t.Errorf("Expected 6 publishers, got %d", status.Publishers)
	}
	if status.Sources != 8 {
		t.Errorf("Expected 8 sources, got %d", status.Sources)
	}
	if status.DedupSize != 42 {
		t.Errorf("Expected dedup size 42, got %d", status.DedupSize)
	}
	if status.LastCycleStart != lastCycle.Format(time.RFC3339) {
		t.Errorf("Unexpected last cycle start: '%s'", status.LastCycleStart)
	}
	if status.Consumers != 0 {
		t.Errorf("Expected 0 consumers, got %d", status.Consumers)
	}
}

func TestGetStatus_NoCycleYet(t *testing.T) {
	srv := newTestServer(t, scheduler.Status{Publishers: 6, Sources: 8})

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if _, ok := raw["last_cycle_start"]; ok {
		t.Error("Expected last_cycle_start to be omitted before the first cycle")
	}
}
