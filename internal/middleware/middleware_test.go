package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"strategy-shop/config"
	"strategy-shop/internal/model"
	"strategy-shop/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func TestIdentify(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newRouter(mw, mw.Identify())

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderUserID, "user_abc")
		r.ServeHTTP(w, req)

		if w.Body.String() != "user_abc" {
			t.Errorf("scope user = %q, want user_abc", w.Body.String())
		}
		if w.Header().Get(HeaderUserID) != "user_abc" {
			t.Errorf("response header = %q", w.Header().Get(HeaderUserID))
		}
	})

	t.Run("mints id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderUserID)
		if !strings.HasPrefix(id, model.UserIDPrefix) {
			t.Errorf("expected minted id, got %q", id)
		}
		if w.Body.String() != id {
			t.Errorf("scope %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderUserID, "bad id")
		r.ServeHTTP(w, req)

		if w.Body.String() == "bad id" {
			t.Error("malformed id must not be trusted")
		}
	})
}

func TestRequestLog(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newRouter(mw, mw.RequestLog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "req-1" {
		t.Errorf("request id not echoed: %q", w.Header().Get(HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("request id not generated")
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 60, Burst: 2})
	r := newRouter(mw, mw.Identify(), mw.RateLimit())

	call := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderUserID, user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := call("user_a"); code != http.StatusOK {
		t.Fatalf("first call: %d", code)
	}
	if code := call("user_a"); code != http.StatusOK {
		t.Fatalf("second call: %d", code)
	}
	if code := call("user_a"); code != http.StatusTooManyRequests {
		t.Errorf("third call should be limited, got %d", code)
	}
	if code := call("user_b"); code != http.StatusOK {
		t.Errorf("other caller should have its own budget, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newRouter(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("call %d limited with limiter disabled", i)
		}
	}
}

func TestMetrics(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newRouter(mw, mw.Metrics())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
