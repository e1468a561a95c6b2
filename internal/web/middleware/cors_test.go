package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsLocalhostOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:5173", true},
		{"http://localhost", true},
		{"https://localhost:8443", true},
		{"https://gallery.example.com", false},
		{"http://localhost.evil.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			if got := isLocalhostOrigin(tt.origin); got != tt.want {
				t.Errorf("isLocalhostOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := map[string]struct{}{
		"https://gallery.example.com": {},
	}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"whitelisted", "https://gallery.example.com", true},
		{"localhost always allowed", "http://localhost:3000", true},
		{"unknown origin", "https://evil.example.com", false},
		{"empty origin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOriginAllowed(tt.origin, allowed); got != tt.want {
				t.Errorf("isOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestIsOriginAllowedWildcard(t *testing.T) {
	allowed := map[string]struct{}{"*": {}}
	if !isOriginAllowed("https://anywhere.example.com", allowed) {
		t.Error("wildcard should allow any non-empty origin")
	}
}

func TestParseAllowedOrigins(t *testing.T) {
	got := parseAllowedOrigins(" https://a.example.com, https://b.example.com ,,")
	if len(got) != 2 {
		t.Fatalf("parsed %d origins, want 2", len(got))
	}
	for _, o := range []string{"https://a.example.com", "https://b.example.com"} {
		if _, ok := got[o]; !ok {
			t.Errorf("origin %q missing from set", o)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS("https://gallery.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight request reached the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/search", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://gallery.example.com" {
		t.Errorf("Allow-Origin = %q, want the request origin", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	handler := CORS("https://gallery.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want no header for disallowed origin", got)
	}
}
