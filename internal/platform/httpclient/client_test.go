package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/marketplace-core/internal/platform/config"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.ClientConfig) *httpclient.Client {
	return httpclient.New(cfg, "notifications", nil, slog.New(slog.DiscardHandler))
}

// send posts body to url and returns the status (0 without a response),
// the response body and the error. The response is always closed.
func send(ctx context.Context, t *testing.T, c *httpclient.Client, url, body string) (int, string, error) {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, r)
	require.NoError(t, err)

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), err
}

// flaky answers failStatus for the first failures calls, then 202.
func flaky(failStatus, failures int, calls *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if int(calls.Add(1)) <= failures {
			w.WriteHeader(failStatus)
			_, _ = io.WriteString(w, http.StatusText(failStatus))
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
}

func TestDo_RetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		failStatus int
		failures   int
		wantStatus int
		wantCalls  int32
		wantErr    bool
		wantBody   string
	}{
		{name: "accepted first time", failures: 0, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "500 then success", failStatus: http.StatusInternalServerError, failures: 2, wantStatus: http.StatusAccepted, wantCalls: 3},
		{name: "429 then success", failStatus: http.StatusTooManyRequests, failures: 1, wantStatus: http.StatusAccepted, wantCalls: 2},
		{name: "400 is final", failStatus: http.StatusBadRequest, failures: 5, wantStatus: http.StatusBadRequest, wantCalls: 1, wantBody: "Bad Request"},
		{name: "501 is final", failStatus: http.StatusNotImplemented, failures: 5, wantStatus: http.StatusNotImplemented, wantCalls: 1, wantBody: "Not Implemented"},
		{
			name:       "503 exhausts attempts and keeps last body",
			failStatus: http.StatusServiceUnavailable,
			failures:   5,
			wantStatus: http.StatusServiceUnavailable,
			wantCalls:  3,
			wantErr:    true,
			wantBody:   "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(flaky(tt.failStatus, tt.failures, &calls))
			t.Cleanup(srv.Close)

			status, body, err := send(context.Background(), t, newClient(testConfig(srv.URL)), srv.URL+"/events", "")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestDo_BodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		n := len(bodies)
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	payload := `{"type":"transition","subject":{"kind":"bounty","id":7}}`
	status, _, err := send(context.Background(), t, newClient(testConfig(srv.URL)), srv.URL+"/events", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{payload, payload}, bodies)
}

func TestDo_ForwardsRequestMetadata(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)
	c := newClient(testConfig(srv.URL))

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
	_, _, err := send(ctx, t, c, srv.URL+"/events", "")
	require.NoError(t, err)
	h := <-got
	assert.Equal(t, "req-123", h.Get("X-Request-ID"))
	assert.Equal(t, "corr-456", h.Get("X-Correlation-ID"))

	_, _, err = send(context.Background(), t, c, srv.URL+"/events", "")
	require.NoError(t, err)
	h = <-got
	assert.Empty(t, h.Get("X-Request-ID"))
	assert.Empty(t, h.Get("X-Correlation-ID"))
}

func TestDo_CircuitBreaker(t *testing.T) {
	t.Parallel()

	var (
		failing atomic.Bool
		calls   atomic.Int32
	)
	failing.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	c := newClient(cfg)
	ctx := context.Background()

	require.NoError(t, c.HealthCheck(ctx))

	_, _, err := send(ctx, t, c, srv.URL, "")
	require.Error(t, err)

	// Open: rejected without reaching the server.
	before := calls.Load()
	status, _, err := send(ctx, t, c, srv.URL, "")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Zero(t, status)
	assert.Equal(t, before, calls.Load())
	if err := c.HealthCheck(ctx); assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failing")
	}

	time.Sleep(150 * time.Millisecond)
	if err := c.HealthCheck(ctx); assert.Error(t, err) {
		assert.Contains(t, err.Error(), "degraded")
	}

	// The half-open trial request succeeds and closes the breaker.
	failing.Store(false)
	status, _, err = send(ctx, t, c, srv.URL, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.NoError(t, c.HealthCheck(ctx))
}

func TestDo_CanceledCallsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)
	c := newClient(testConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for range 5 {
		_, _, err := send(ctx, t, c, srv.URL+"/events", "{}")
		require.ErrorIs(t, err, context.Canceled)
	}

	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_RetryAfterHonored(t *testing.T) {
	t.Parallel()

	var (
		calls atomic.Int32
		first atomic.Int64
		gap   atomic.Int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		now := time.Now().UnixNano()
		if calls.Add(1) == 1 {
			first.Store(now)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		gap.Store(now - first.Load())
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxInterval = 60 * time.Millisecond

	status, _, err := send(context.Background(), t, newClient(cfg), srv.URL+"/events", "{}")
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)

	// One second of Retry-After is capped at MaxInterval.
	d := time.Duration(gap.Load())
	assert.GreaterOrEqual(t, d, 50*time.Millisecond)
	assert.Less(t, d, 900*time.Millisecond)
}

func TestDo_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(flaky(0, 0, &calls))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	c := newClient(cfg)

	_, _, err := send(context.Background(), t, c, srv.URL, "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err = send(ctx, t, c, srv.URL, "")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "notifications", newClient(testConfig("http://localhost")).Name())
}
