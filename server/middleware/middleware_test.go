package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// TestRequestID проверяет генерацию и проброс request ID
func TestRequestID(t *testing.T) {
	r := newTestRouter(RequestID())

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID не установлен")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	r := newTestRouter(RequestID())

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q", got)
	}
}

// TestCORS проверяет добавление CORS заголовков
func TestCORS(t *testing.T) {
	r := newTestRouter(CORS())

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

// TestCORS_OPTIONS проверяет обработку preflight запросов
func TestCORS_OPTIONS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.OPTIONS("/test", func(c *gin.Context) {})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("OPTIONS request status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

// TestRecovery паника обработчика превращается в ответ 500
func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

// TestRateLimit после исчерпания лимита запросы получают 429
func TestRateLimit(t *testing.T) {
	r := newTestRouter(RateLimit(1, 2))

	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	if codes[http.StatusOK] == 0 {
		t.Error("все запросы отклонены")
	}
	if codes[http.StatusTooManyRequests] == 0 {
		t.Error("лимит не сработал")
	}
}
