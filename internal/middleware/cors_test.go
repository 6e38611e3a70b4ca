package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func preflight(r http.Handler, origin, headers string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	if headers != "" {
		req.Header.Set("Access-Control-Request-Headers", headers)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func newCORSEngine(origins ...string) *gin.Engine {
	r := gin.New()
	r.Use(CORS(origins))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORS_PreflightEchoesRequestedHeaders(t *testing.T) {
	rr := preflight(newCORSEngine(), "http://localhost:5173", "content-type, x-device-id,X-Trace")

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	allowed := strings.Split(rr.Header().Get("Access-Control-Allow-Headers"), ",")
	has := make(map[string]int)
	for _, h := range allowed {
		has[h]++
	}
	for _, h := range []string{"Content-Type", "X-Device-Id", "X-Trace", "Authorization"} {
		if has[h] != 1 {
			t.Errorf("Allow-Headers %v: %s appears %d times, want 1", allowed, h, has[h])
		}
	}
}

func TestCORS_PreflightWithoutRequestedHeaders(t *testing.T) {
	rr := preflight(newCORSEngine(), "http://localhost:5173", "")

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Content-Type") {
		t.Errorf("Allow-Headers = %q, want the default list", got)
	}
}

func TestCORS_RejectedOriginGetsNoHeaders(t *testing.T) {
	rr := preflight(newCORSEngine("https://trackit.app"), "http://evil.example", "x-device-id")

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != "" {
		t.Errorf("Allow-Headers = %q, want none", got)
	}
}
