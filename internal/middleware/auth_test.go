package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		cookie   *http.Cookie
		sentinel string
		want     int
	}{
		{"no cookie", nil, "true", http.StatusUnauthorized},
		{"wrong value", &http.Cookie{Name: AdminCookieName, Value: "false"}, "true", http.StatusUnauthorized},
		{"other cookie name", &http.Cookie{Name: "auth", Value: "true"}, "true", http.StatusUnauthorized},
		{"valid cookie", &http.Cookie{Name: AdminCookieName, Value: "true"}, "true", http.StatusOK},
		{"custom sentinel", &http.Cookie{Name: AdminCookieName, Value: "opaque"}, "opaque", http.StatusOK},
		{"empty sentinel never matches", &http.Cookie{Name: AdminCookieName, Value: ""}, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := RequireAdmin(tt.sentinel)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d", rr.Code, tt.want)
			}
			if called != (tt.want == http.StatusOK) {
				t.Errorf("next called = %v", called)
			}
			if tt.want == http.StatusUnauthorized {
				var body map[string]string
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body["error"] != "Unauthorized" {
					t.Errorf("error = %q", body["error"])
				}
				if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q", ct)
				}
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsAdmin(req, "true") {
		t.Error("request without cookie reported as admin")
	}
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "true"})
	if !IsAdmin(req, "true") {
		t.Error("request with cookie not reported as admin")
	}
}
