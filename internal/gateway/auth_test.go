package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidToken(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   bool
	}{
		{name: "valid", secret: "s3cret", header: "Bearer s3cret", want: true},
		{name: "wrong token", secret: "s3cret", header: "Bearer nope", want: false},
		{name: "missing prefix", secret: "s3cret", header: "s3cret", want: false},
		{name: "empty header", secret: "s3cret", header: "", want: false},
		{name: "empty secret", secret: "", header: "Bearer ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validToken(tt.secret, tt.header); got != tt.want {
				t.Errorf("validToken(%q, %q) = %v, want %v", tt.secret, tt.header, got, tt.want)
			}
		})
	}
}

func TestRequireToken(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := requireToken("s3cret", inner)

	cases := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{name: "bearer header", header: "Bearer s3cret", want: http.StatusOK},
		{name: "query param", query: "?access_token=s3cret", want: http.StatusOK},
		{name: "no auth", want: http.StatusUnauthorized},
		{name: "wrong header", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong query", query: "?access_token=nope", want: http.StatusUnauthorized},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/jsonrpc/ws"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireTokenEmptySecretRejectsAll(t *testing.T) {
	h := requireToken("", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler reached without a secret")
	}))
	req := httptest.NewRequest(http.MethodGet, "/jsonrpc/ws", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
