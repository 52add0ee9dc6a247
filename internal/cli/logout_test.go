package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogoutClearsCookie(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Save a config with a session cookie
	cfg := CLIConfig{SessionCookie: "SACSID=abc123", ServerURL: "http://myhost:9090"}
	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	var buf bytes.Buffer
	if err := runLogout(&buf); err != nil {
		t.Fatalf("logout: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionCookie != "" {
		t.Errorf("session_cookie = %q, want empty after logout", loaded.SessionCookie)
	}
	// Server URL should be preserved
	if loaded.ServerURL != "http://myhost:9090" {
		t.Errorf("server_url = %q, want preserved after logout", loaded.ServerURL)
	}
	if !strings.Contains(buf.String(), "Logged out") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogoutWhenNotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	// No config file, should not error
	if err := runLogout(&buf); err != nil {
		t.Fatalf("logout with no config: %v", err)
	}
	if !strings.Contains(buf.String(), "Not logged in.") {
		t.Errorf("output = %q", buf.String())
	}
}
