package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/strideworks/stride-backend/pkg/auth"
	"github.com/strideworks/stride-backend/pkg/config"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(context.Context, string) (bool, error) { return false, nil }

type liveSessionChecker struct{}

func (liveSessionChecker) HasSession(context.Context, string) (bool, error) { return true, nil }

type memoryIdemStore struct {
	data map[string]string
}

func (s *memoryIdemStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return "", goredis.Nil
}

func (s *memoryIdemStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	s.data[key] = str
	return true, nil
}

func (s *memoryIdemStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

func (s *memoryIdemStore) IdempotencyKey(scope, id string) string {
	return "idem:" + scope + ":" + id
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "stride-test"
	cfg.JWT.ExpirationMinutes = 15
	return cfg
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := newTestConfig()

	logg := logger.New(logger.Options{ServiceName: "router-test"})
	registry := prometheus.NewRegistry()

	// Handlers are built lazily; unexercised services can stay nil.
	return NewRouter(cfg, logg, stubPinger{}, stubPinger{}, nil,
		stubSessionChecker{}, metrics.NewHTTPMetrics(registry), registry, Services{})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env := rec.Header().Get("X-Stride-Env"); env != "test" {
		t.Fatalf("env header = %q, want test", env)
	}
}

func TestHealthReady(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/catalogues"},
		{http.MethodGet, "/api/v1/categories"},
		{http.MethodGet, "/api/v1/vendors"},
		{http.MethodGet, "/api/v1/purchase-orders"},
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/admin/v1/users"},
	}

	for _, tt := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d, want 401", tt.method, tt.path, rec.Code)
		}
	}
}

// Guards against the retryable writes losing their idempotency check when
// the middleware is wired at the wrong level of the route tree.
func TestRetryableWritesRequireIdempotencyKey(t *testing.T) {
	cfg := newTestConfig()
	logg := logger.New(logger.Options{ServiceName: "router-test"})
	registry := prometheus.NewRegistry()
	store := &memoryIdemStore{data: make(map[string]string)}

	router := NewRouter(cfg, logg, stubPinger{}, stubPinger{}, store,
		liveSessionChecker{}, metrics.NewHTTPMetrics(registry), registry, Services{})

	tests := []struct {
		name   string
		method string
		path   string
		role   enums.MemberRole
	}{
		{"po create", http.MethodPost, "/api/v1/purchase-orders", enums.RoleManager},
		{"po send", http.MethodPost, "/api/v1/purchase-orders/" + uuid.NewString() + "/send", enums.RoleManager},
		{"cart replace", http.MethodPut, "/api/v1/cart", enums.RoleDistributor},
		{"checkout", http.MethodPost, "/api/v1/checkout", enums.RoleDistributor},
		{"order cancel", http.MethodPost, "/api/v1/orders/" + uuid.NewString() + "/cancel", enums.RoleDistributor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
				UserID: uuid.New(),
				Role:   tc.role,
			})
			if err != nil {
				t.Fatalf("mint token: %v", err)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s %s status = %d, want 400", tc.method, tc.path, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Idempotency-Key") {
				t.Fatalf("body = %q, want Idempotency-Key requirement", rec.Body.String())
			}
		})
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
