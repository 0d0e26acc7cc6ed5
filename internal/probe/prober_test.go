package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"webaudit/internal/config"
)

func newTestProber() *Prober {
	cfg := &config.Config{ProbeTimeout: 5 * time.Second}
	return NewProber(cfg, zap.NewNop())
}

func TestProber_ProbeHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "123")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := newTestProber().Probe(context.Background(), srv.URL)

	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}
	if result.Method != http.MethodHead {
		t.Errorf("expected a HEAD probe, got %s", result.Method)
	}
	if result.Status != http.StatusOK {
		t.Errorf("expected status 200, got %d", result.Status)
	}
	if result.ContentLength != 123 {
		t.Errorf("expected content length 123, got %d", result.ContentLength)
	}
	if result.Broken() {
		t.Error("expected a healthy result")
	}
}

func TestProber_FallsBackToGetOnMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	result := newTestProber().Probe(context.Background(), srv.URL)

	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}
	if result.Method != http.MethodGet {
		t.Errorf("expected a GET fallback, got %s", result.Method)
	}
	if result.Status != http.StatusOK {
		t.Errorf("expected status 200 after fallback, got %d", result.Status)
	}
	if result.ContentLength != 5 {
		t.Errorf("expected content length 5, got %d", result.ContentLength)
	}
}

func TestProber_FallsBackToGetWhenLengthUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Flushing before writing forces a response without Content-Length
		w.(http.Flusher).Flush()
		if r.Method == http.MethodGet {
			w.Write([]byte("0123456789"))
		}
	}))
	defer srv.Close()

	result := newTestProber().Probe(context.Background(), srv.URL)

	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}
	if result.Method != http.MethodGet {
		t.Errorf("expected a GET fallback, got %s", result.Method)
	}
	if result.ContentLength != 10 {
		t.Errorf("expected the drained body size 10, got %d", result.ContentLength)
	}
}

func TestProber_BrokenTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	result := newTestProber().Probe(context.Background(), srv.URL+"/missing")

	if result.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", result.Status)
	}
	if !result.Broken() {
		t.Error("expected a broken result")
	}
	if result.Duration <= 0 {
		t.Error("expected a positive duration")
	}
}

func TestProber_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	prober := newTestProber()
	// No point waiting out retry backoff against a closed socket
	prober.client.RetryMax = 0

	result := prober.Probe(context.Background(), dead)

	if result.Err == "" {
		t.Fatal("expected a transport error")
	}
	if !result.Broken() {
		t.Error("expected a broken result")
	}
}
