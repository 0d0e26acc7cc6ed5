package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"webaudit/internal/config"
	"webaudit/internal/execution"
)

func TestRunner_Run(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	cfg := &config.Config{Workers: 2, ProbeTimeout: 5 * time.Second}
	runner := NewRunner(cfg, NewProber(cfg, zap.NewNop()), execution.NewRoundRobinScheduler(), zap.NewNop())

	urls := []string{
		srv.URL + "/a",
		srv.URL + "/b",
		srv.URL + "/missing",
	}
	probes := runner.Run(context.Background(), urls)

	if len(probes) != len(urls) {
		t.Fatalf("expected %d results, got %d", len(urls), len(probes))
	}
	for _, u := range urls {
		if _, ok := probes[u]; !ok {
			t.Fatalf("missing result for %s", u)
		}
	}
	if probes[srv.URL+"/a"].Broken() {
		t.Error("expected a healthy result for /a")
	}
	if !probes[srv.URL+"/missing"].Broken() {
		t.Error("expected a broken result for /missing")
	}
}

func TestRunner_RunEmpty(t *testing.T) {
	cfg := &config.Config{Workers: 2}
	runner := NewRunner(cfg, nil, execution.NewRoundRobinScheduler(), zap.NewNop())

	probes := runner.Run(context.Background(), nil)
	if probes == nil {
		t.Fatal("expected an empty map, got nil")
	}
	if len(probes) != 0 {
		t.Errorf("expected no results, got %d", len(probes))
	}
}
