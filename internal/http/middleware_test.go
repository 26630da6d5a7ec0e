package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"

	"linuxword/internal/contextutil"
)

// captureLogs routes slog.Default into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &logs
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		withRequestID bool
		wantRequestID bool
	}{
		{name: "request id attached", withRequestID: true, wantRequestID: true},
		{name: "no request id middleware", withRequestID: false, wantRequestID: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				contextutil.LoggerFromContext(r.Context()).InfoContext(r.Context(), "formatting applied")
				w.WriteHeader(http.StatusOK)
			})
			handler = LoggerMiddleware(handler)
			if tt.withRequestID {
				handler = middleware.RequestID(handler)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/document/format", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			out := logs.String()
			if !strings.Contains(out, "formatting applied") {
				t.Fatalf("handler log missing: %s", out)
			}
			if !strings.Contains(out, "path=/api/document/format") || !strings.Contains(out, "method=POST") {
				t.Errorf("request attributes missing: %s", out)
			}
			if got := strings.Contains(out, "request_id="); got != tt.wantRequestID {
				t.Errorf("request_id logged = %v, want %v: %s", got, tt.wantRequestID, out)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		wantLevel  string // empty when nothing should be logged
	}{
		{
			name:       "successful edit logged at info",
			method:     http.MethodPost,
			path:       "/api/document/replace",
			statusCode: http.StatusOK,
			wantLevel:  "INFO",
		},
		{
			name:       "invalid pattern logged at warn",
			method:     http.MethodPost,
			path:       "/api/document/replace",
			statusCode: http.StatusBadRequest,
			wantLevel:  "WARN",
		},
		{
			name:       "storage failure logged at error",
			method:     http.MethodPost,
			path:       "/api/document/save",
			statusCode: http.StatusInternalServerError,
			wantLevel:  "ERROR",
		},
		{
			name:       "page load is quiet",
			method:     http.MethodGet,
			path:       "/",
			statusCode: http.StatusOK,
		},
		{
			name:       "healthy check is quiet",
			method:     http.MethodGet,
			path:       "/api/health",
			statusCode: http.StatusOK,
		},
		{
			name:       "unhealthy check logged",
			method:     http.MethodGet,
			path:       "/api/health",
			statusCode: http.StatusServiceUnavailable,
			wantLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("RequestLogger() status = %v, want %v", w.Code, tt.statusCode)
			}
			out := logs.String()
			if tt.wantLevel == "" {
				if out != "" {
					t.Errorf("RequestLogger() logged %q, want nothing", out)
				}
				return
			}
			if !strings.Contains(out, "level="+tt.wantLevel) || !strings.Contains(out, "request completed") {
				t.Errorf("RequestLogger() log = %q, want level %s", out, tt.wantLevel)
			}
		})
	}
}

func TestRequestLogger_ImplicitStatus(t *testing.T) {
	logs := captureLogs(t)
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Title\nBody text"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/document/export", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(logs.String(), "status=200") {
		t.Errorf("RequestLogger() log = %q, want status=200", logs.String())
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantNext   bool
	}{
		{
			name:       "delete preflight answered without the handler",
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusNoContent,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "delete with origin",
			method:     http.MethodDelete,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
			wantNext:   true,
		},
		{
			name:       "request without origin",
			method:     http.MethodPut,
			wantStatus: http.StatusOK,
			wantOrigin: "*",
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/documents/Report", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("CORS() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if called != tt.wantNext {
				t.Errorf("CORS() called next = %v, want %v", called, tt.wantNext)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodDelete) {
				t.Errorf("Access-Control-Allow-Methods = %q, want DELETE allowed", got)
			}
		})
	}
}
