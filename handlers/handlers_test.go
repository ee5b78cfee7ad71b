package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joya-jewelry/server/services"
	"github.com/joya-jewelry/server/store"
)

type testEnv struct {
	users    *store.MemoryUserStore
	products *store.MemoryProductStore
	brands   *store.MemoryBrandStore
	router   *gin.Engine
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	products := store.NewMemoryProductStore()
	brands := store.NewMemoryBrandStore()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(services.NewProfileService(users), users, products, brands, logger, 2*time.Second)

	return &testEnv{
		users:    users,
		products: products,
		brands:   brands,
		router:   NewRouter(h),
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestHomeGreeting(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Body.String(); got != "Joya Jewelry server is running" {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestHealthWithoutPinger(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	env := setup(t)

	rr := env.do(http.MethodGet, "/", "")
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id header on response")
	}
}
