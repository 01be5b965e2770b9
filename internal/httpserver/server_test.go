package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	chatHTTP "multilingual-chatbot/internal/chat/delivery/http"
	memoryRepo "multilingual-chatbot/internal/chat/repository/memory"
	"multilingual-chatbot/internal/chat/usecase"
	"multilingual-chatbot/internal/middleware"
	"multilingual-chatbot/internal/orchestrator"
	"multilingual-chatbot/internal/speech"
	"multilingual-chatbot/pkg/log"
	"multilingual-chatbot/pkg/metrics"
)

func newTestServer(t *testing.T, readiness map[string]ReadinessCheck) (*HTTPServer, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	m := metrics.New()
	repo := memoryRepo.New(memoryRepo.Options{Capacity: 100}, l)
	pool := orchestrator.NewPool(l, orchestrator.PoolConfig{Capacity: 100})
	uc := usecase.New(repo, pool, m, l)

	srv, err := New(l, Config{
		Logger:         l,
		Port:           8000,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.New(l, m, middleware.Config{}),
		MetricsHandler: m.Handler(),
		Readiness:      readiness,
		ChatHandler:    chatHTTP.New(l, uc),
		SpeechHandler:  speech.New(l),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv, m
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 8000, ChatHandler: chatHTTP.New(l, nil)}},
		{"missing port", Config{Mode: gin.TestMode, ChatHandler: chatHTTP.New(l, nil)}},
		{"missing chat handler", Config{Port: 8000, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if _, err := New(nil, Config{Port: 8000, Mode: gin.TestMode, ChatHandler: chatHTTP.New(l, nil)}); err == nil {
		t.Fatal("expected error for nil logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := do(t, srv.Handler(), http.MethodGet, path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["service"] != ServiceName {
				t.Errorf("service = %v, want %s", body["service"], ServiceName)
			}
		})
	}
}

func TestReady_DependencyDown(t *testing.T) {
	srv, _ := newTestServer(t, map[string]ReadinessCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	w := do(t, srv.Handler(), http.MethodGet, "/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Status != "not_ready" || body.Checks["redis"] != "unavailable" {
		t.Errorf("body = %+v", body)
	}
}

func TestChatFlow_EndToEnd(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/chat", `{"message":"Hello","target_language":"es"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d, body = %s", w.Code, w.Body.String())
	}
	var chat struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &chat); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if want := "[es] You said: Hello. Let me know if you need more help."; chat.Response != want {
		t.Errorf("response = %q, want %q", chat.Response, want)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	w = do(t, h, http.MethodGet, "/chat-history/"+chat.SessionID, "")
	var turns []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &turns); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(turns) != 1 || turns[0]["user_input"] != "Hello" {
		t.Fatalf("history = %v", turns)
	}

	w = do(t, h, http.MethodDelete, "/chat-history/"+chat.SessionID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/chat-history/"+chat.SessionID, "")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("history after reset = %s, want []", got)
	}
}

func TestSpeechRoute(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := do(t, srv.Handler(), http.MethodPost, "/text-to-speech", `{"text":"hola"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content type = %q", ct)
	}
	if got := w.Body.String(); got != "ID3hola" {
		t.Errorf("body = %q, want ID3hola", got)
	}
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	do(t, h, http.MethodPost, "/chat", `{"message":"Hi"}`)
	w := do(t, h, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "chatbot_chat_turns_total") {
		t.Error("expected chat turn series in /metrics output")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := do(t, srv.Handler(), http.MethodOptions, "/chat", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q", got)
	}
}
