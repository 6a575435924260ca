package jobs

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crmstack/crm-backend/internal/client"
)

func testClient(baseURL string) *client.Client {
	return client.New(client.Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 1,
	})
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
}

func TestHeartbeat_APIUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hello":"Hello, CRM!"}`))
	}))
	defer server.Close()

	var sink bytes.Buffer
	job := NewHeartbeat(testClient(server.URL), &sink)
	job.now = fixedNow

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "01/03/2024-12:30:45 CRM is alive") {
		t.Errorf("missing liveness line in %q", out)
	}
	if !strings.Contains(out, "API hello: Hello, CRM!") {
		t.Errorf("missing hello line in %q", out)
	}
}

func TestHeartbeat_APIDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var sink bytes.Buffer
	job := NewHeartbeat(testClient(server.URL), &sink)
	job.now = fixedNow

	// A dead API must not fail the heartbeat itself.
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "CRM is alive") {
		t.Errorf("liveness line must always be written, got %q", out)
	}
	if !strings.Contains(out, "API check failed") {
		t.Errorf("missing failure line in %q", out)
	}
}
