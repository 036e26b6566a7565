package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shopbot/config"
	"shopbot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// opencensus, pulled in by the Pub/Sub client, starts its view worker in init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingHandler struct {
	mu     sync.Mutex
	events []string
	delay  time.Duration
	err    error
}

func (h *recordingHandler) Dispatch(_ context.Context, event *service.OrderReadyEvent) error {
	time.Sleep(h.delay)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event.OrderID)

	return h.err
}

func (h *recordingHandler) handled() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.events...)
}

func TestInlinePublisher_DrainsOnClose(t *testing.T) {
	handler := &recordingHandler{delay: 5 * time.Millisecond}
	publisher := NewInlinePublisher(handler, 2, newDiscardLogger())

	for _, id := range []string{"o1", "o2", "o3", "o4"} {
		require.NoError(t, publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: id}))
	}

	require.NoError(t, publisher.Close())
	assert.Equal(t, []string{"o1", "o2", "o3", "o4"}, handler.handled())

	err := publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o5"})
	assert.ErrorIs(t, err, ErrPublisherClosed)
	assert.NoError(t, publisher.Close())
}

func TestInlinePublisher_HandlerErrorsAreSwallowed(t *testing.T) {
	handler := &recordingHandler{err: assert.AnError}
	publisher := NewInlinePublisher(handler, 1, newDiscardLogger())

	require.NoError(t, publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o1"}))
	require.NoError(t, publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o2"}))
	require.NoError(t, publisher.Close())

	assert.Len(t, handler.handled(), 2)
}

func TestInlinePublisher_PublishHonoursContext(t *testing.T) {
	block := make(chan struct{})
	handler := &blockingHandler{release: block, started: make(chan struct{})}
	publisher := NewInlinePublisher(handler, 1, newDiscardLogger())

	// One event in flight, one buffered, the third waits on the context.
	require.NoError(t, publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o1"}))
	<-handler.started
	require.NoError(t, publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o2"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := publisher.PublishOrderReady(ctx, &service.OrderReadyEvent{OrderID: "o3"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	require.NoError(t, publisher.Close())
}

type blockingHandler struct {
	release <-chan struct{}
	started chan struct{}
	once    sync.Once
}

func (h *blockingHandler) Dispatch(_ context.Context, _ *service.OrderReadyEvent) error {
	h.once.Do(func() { close(h.started) })
	<-h.release

	return nil
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.OrderReadyEvent{RequestID: "req-1", OrderID: "o1", UserID: "psid-1", Phone: "99110022", Total: 39900}

	require.NoError(t, publisher.PublishOrderReady(context.Background(), event))
	require.NoError(t, publisher.Close())

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "o1", decoded.OrderID)
	assert.Equal(t, int64(39900), decoded.Total)
	assert.Equal(t, "psid-1", received.Message.Attributes["user_id"])
	assert.Equal(t, localSubscription, received.Subscription)
}

func TestLocalHTTPPublisher_RetriesUnavailableWorker(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []int
		wantErr      bool
		wantAttempts int32
	}{
		{name: "recovers after redelivery", statuses: []int{503, 200}, wantAttempts: 2},
		{name: "gives up after three attempts", statuses: []int{503, 503, 503, 503}, wantErr: true, wantAttempts: 3},
		{name: "client error is not retried", statuses: []int{400}, wantErr: true, wantAttempts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := attempts.Add(1)
				w.WriteHeader(tt.statuses[n-1])
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger()).(*localHTTPPublisher)
			publisher.retryStep = time.Millisecond

			err := publisher.PublishOrderReady(context.Background(), &service.OrderReadyEvent{OrderID: "o1"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAttempts, attempts.Load())
		})
	}
}

func TestPushMessage_DecodeEventRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"
	_, err := msg.DecodeEvent()
	assert.Error(t, err)

	msg, err = NewPushMessage(localSubscription, &service.OrderReadyEvent{})
	require.NoError(t, err)
	_, err = msg.DecodeEvent()
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	handler := &recordingHandler{}

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		handler EventHandler
		wantErr bool
	}{
		{name: "default inline", cfg: nil, handler: handler},
		{name: "inline without handler", cfg: &config.PubSubConfig{Provider: "inline"}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:      lc,
				Ctx:     context.Background(),
				Config:  &config.Config{PubSub: tt.cfg},
				Logger:  newDiscardLogger(),
				Handler: tt.handler,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
