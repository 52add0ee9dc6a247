package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evcraddock/portfolio/internal/client"
)

func TestValidateSessionCookie(t *testing.T) {
	tests := []struct {
		name    string
		cookie  string
		wantErr bool
	}{
		{"valid cookie", "SACSID=abc123", false},
		{"value with equals", "SACSID=abc=def", false},
		{"empty", "", true},
		{"no equals", "abc123", true},
		{"no name", "=abc123", true},
		{"no value", "SACSID=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionCookie(tt.cookie)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSessionCookie(%q) err = %v, wantErr = %v", tt.cookie, err, tt.wantErr)
			}
		})
	}
}

func TestLoginPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login-info" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<p id="isLoggedIn">User is not logged in</p>
<p id="loginUrl">Login <a href="/_ah/login?continue=%2F">here</a>.</p>`))
	}))
	defer srv.Close()

	got := loginPage(context.Background(), client.New(srv.URL, ""))
	if want := srv.URL + "/_ah/login?continue=%2F"; got != want {
		t.Errorf("loginPage = %q, want %q", got, want)
	}
}

func TestLoginPageFallsBackToServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := loginPage(context.Background(), client.New(srv.URL, ""))
	if got != srv.URL {
		t.Errorf("loginPage = %q, want %q", got, srv.URL)
	}
}
