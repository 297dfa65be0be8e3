package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(handler http.Handler, method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/events", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("allowed origin gets headers", func(t *testing.T) {
		handler := CORS([]string{"https://app.example.com"}, next)
		rr := do(handler, http.MethodGet, "https://app.example.com")
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Fatalf("expected allow-origin header, got %q", got)
		}
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		handler := CORS([]string{"https://app.example.com"}, next)
		rr := do(handler, http.MethodGet, "https://evil.example.com")
		if rr.Code != http.StatusOK {
			t.Fatalf("request should still be served, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected no allow-origin header, got %q", got)
		}
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"}, next)
		rr := do(handler, http.MethodGet, "https://anywhere.example.com")
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example.com" {
			t.Fatalf("expected allow-origin header, got %q", got)
		}
	})

	t.Run("implicit 200 keeps headers", func(t *testing.T) {
		// Handlers that only write the body rely on the implicit
		// WriteHeader; the allow-origin header must already be set.
		implicit := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})
		handler := CORS([]string{"https://app.example.com"}, implicit)
		rr := do(handler, http.MethodGet, "https://app.example.com")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Fatalf("expected allow-origin header, got %q", got)
		}
	})

	t.Run("preflight answered with 204", func(t *testing.T) {
		handler := CORS([]string{"https://app.example.com"}, next)
		rr := do(handler, http.MethodOptions, "https://app.example.com")
		if rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Methods"); got == "" {
			t.Fatal("expected allow-methods header on preflight")
		}
	})
}
