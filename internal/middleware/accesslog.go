// internal/middleware/accesslog.go
//
// Access-log middleware.
//
/*
Context
--------
One INFO line per request, written after the handler returns:

  method, route pattern, path, status, bytes, duration_ms, client IP,
  browser, OS, device class, and bot flag.

The UA fields come from internal/ua (uasurfer).  The client IP is the
left-most parseable address in X-Forwarded-For, then X-Real-Ip, then
r.RemoteAddr.

Notes
-----
  • /metrics and /healthz are scraped constantly; they log at DEBUG.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/ua"
)

// AccessLog returns a wrapper that logs every request through log.
func AccessLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.S()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			info := ua.Parse(r.UserAgent())

			logf := log.Infow
			if r.URL.Path == "/metrics" || r.URL.Path == "/healthz" {
				logf = log.Debugw
			}
			logf("http request",
				"method", r.Method,
				"route", route,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", clientIP(r),
				"browser", info.Browser,
				"os", info.OS,
				"device", info.Device,
				"bot", info.IsBot,
			)
		})
	}
}

// clientIP extracts the left-most parseable address from X-Forwarded-For
// or X-Real-Ip, falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip.String()
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip.String()
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
