package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows credentialed cross-origin requests. With no configured origins
// every requesting origin is reflected back, which is only suitable for
// development and trusted networks. Preflights get every header they ask for.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language",
			"Authorization", "X-Requested-With", RequestIDHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader, "X-QR-Code", "X-QR-Expires-In"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	handler := cors.New(cfg)

	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method != http.MethodOptions || requested == "" {
			handler(c)
			return
		}
		w := &preflightWriter{ResponseWriter: c.Writer, requested: requested}
		c.Writer = w
		handler(c)
		c.Writer = w.ResponseWriter
	}
}

// preflightWriter adds the headers a preflight asked for to
// Access-Control-Allow-Headers right before the status line goes out.
type preflightWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *preflightWriter) WriteHeader(code int) {
	w.allowRequested()
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) WriteHeaderNow() {
	w.allowRequested()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *preflightWriter) allowRequested() {
	header := w.Header()
	// rejected origins get no CORS headers at all
	if header.Get("Access-Control-Allow-Origin") == "" {
		return
	}

	allowed := header.Get("Access-Control-Allow-Headers")
	seen := make(map[string]bool)
	var names []string
	for _, name := range strings.Split(allowed+","+w.requested, ",") {
		name = http.CanonicalHeaderKey(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	header.Set("Access-Control-Allow-Headers", strings.Join(names, ","))
}
