package jobs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/queue"
)

// mockQueue records published reminder jobs
type mockQueue struct {
	published  []*models.ReminderJob
	publishErr error
}

func (m *mockQueue) Publish(ctx context.Context, job *models.ReminderJob) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueue) Consume(ctx context.Context, handler queue.ReminderHandler, concurrency int) error {
	return nil
}

func (m *mockQueue) Close() error                     { return nil }
func (m *mockQueue) Health(ctx context.Context) error { return nil }

func TestOrderReminders_LogsAndQueues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "PENDING" {
			t.Errorf("status = %q, want PENDING", got)
		}
		if r.URL.Query().Get("since") == "" {
			t.Error("expected since parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":7,"customer_id":1,"status":"PENDING","order_date":"2024-02-28T10:00:00Z","total_amount":"1200","customer":{"id":1,"name":"Alice","email":"alice@example.com","created_at":"2024-01-01T00:00:00Z"}},
			{"id":8,"customer_id":2,"status":"PENDING","order_date":"2024-02-29T10:00:00Z","total_amount":"600","customer":{"id":2,"name":"Bob","email":"bob@example.com","created_at":"2024-01-01T00:00:00Z"}}
		]`))
	}))
	defer server.Close()

	var sink bytes.Buffer
	q := &mockQueue{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	job := NewOrderReminders(testClient(server.URL), q, &sink, 7*24*time.Hour, logger)
	job.now = fixedNow

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "Order ID: 7 | Customer Email: alice@example.com") {
		t.Errorf("missing reminder line for order 7 in %q", out)
	}
	if !strings.Contains(out, "Order ID: 8 | Customer Email: bob@example.com") {
		t.Errorf("missing reminder line for order 8 in %q", out)
	}

	if len(q.published) != 2 {
		t.Fatalf("expected 2 queued reminders, got %d", len(q.published))
	}
	if q.published[0].OrderID != 7 || q.published[0].CustomerEmail != "alice@example.com" {
		t.Errorf("unexpected first job %+v", q.published[0])
	}
}

func TestOrderReminders_QueryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var sink bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	job := NewOrderReminders(testClient(server.URL), nil, &sink, 7*24*time.Hour, logger)
	job.now = fixedNow

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error when order query fails")
	}

	if !strings.Contains(sink.String(), "Error fetching orders") {
		t.Errorf("missing failure line in %q", sink.String())
	}
}

func TestOrderReminders_NilQueueLogsOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"customer_id":1,"status":"PENDING","order_date":"2024-02-28T10:00:00Z","total_amount":"5","customer":{"id":1,"name":"A","email":"a@example.com","created_at":"2024-01-01T00:00:00Z"}}]`))
	}))
	defer server.Close()

	var sink bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	job := NewOrderReminders(testClient(server.URL), nil, &sink, 7*24*time.Hour, logger)
	job.now = fixedNow

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sink.String(), "Order ID: 1") {
		t.Errorf("reminder should still be logged without a queue, got %q", sink.String())
	}
}
