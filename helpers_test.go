package cleanblog

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://example.com", nil, "http://example.com/"},
		{"http://example.com/", nil, "http://example.com/"},
		{"http://example.com", []string{"about"}, "http://example.com/about"},
		{"http://example.com", []string{"/post/3"}, "http://example.com/post/3"},
		{"http://example.com/blog", []string{"post", "3"}, "http://example.com/blog/post/3"},
		{"http://localhost:5003", []string{"/post/3"}, "http://localhost:5003/post/3"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestPostDates(t *testing.T) {
	if got := ISODate("March 05, 2026"); got != "2026-03-05" {
		t.Errorf("ISODate = %q, want 2026-03-05", got)
	}
	if got := RFC1123Date("March 05, 2026"); got != "Thu, 05 Mar 2026 00:00:00 +0000" {
		t.Errorf("RFC1123Date = %q", got)
	}
	if got := ISODate("yesterday"); got != "" {
		t.Errorf("ISODate(invalid) = %q, want empty", got)
	}
	if got := RFC1123Date(""); got != "" {
		t.Errorf("RFC1123Date(empty) = %q, want empty", got)
	}
}

func TestBlogPostLinks(t *testing.T) {
	p := BlogPost{ID: 7}
	if p.Link() != "/post/7" {
		t.Errorf("Link = %q", p.Link())
	}
	if p.EditLink() != "/edit-post/7" {
		t.Errorf("EditLink = %q", p.EditLink())
	}
	if p.DeleteLink() != "/delete/7" {
		t.Errorf("DeleteLink = %q", p.DeleteLink())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := SiteConfig{URL: "https://blog.example.com/"}.WithDefaults()

	if cfg.URL != "https://blog.example.com" {
		t.Errorf("URL = %q, trailing slash should be trimmed", cfg.URL)
	}
	if cfg.Name != "Blog" || cfg.Addr != ":5003" || cfg.DatabasePath != "data/posts.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SubmitLimit != 30 || cfg.LogFormat != "json" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigDefaultsReplaceNonPositive(t *testing.T) {
	cfg := SiteConfig{SubmitLimit: -1, SubmitWindow: -time.Second, ShutdownTimeout: -5 * time.Second}.WithDefaults()

	if cfg.SubmitLimit != 30 {
		t.Errorf("SubmitLimit = %d, want 30", cfg.SubmitLimit)
	}
	if cfg.SubmitWindow != time.Minute {
		t.Errorf("SubmitWindow = %v, want 1m", cfg.SubmitWindow)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestConfigFromEnvNegativeWindow(t *testing.T) {
	t.Setenv("SUBMIT_WINDOW", "-1s")
	t.Setenv("SUBMIT_LIMIT", "0")

	cfg := ConfigFromEnv().WithDefaults()

	if cfg.SubmitWindow != time.Minute || cfg.SubmitLimit != 30 {
		t.Errorf("got window %v limit %d, want defaults", cfg.SubmitWindow, cfg.SubmitLimit)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Env Blog")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SUBMIT_LIMIT", "5")
	t.Setenv("SUBMIT_WINDOW", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()

	if cfg.Name != "Env Blog" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true")
	}
	if cfg.SubmitLimit != 5 {
		t.Errorf("SubmitLimit = %d", cfg.SubmitLimit)
	}
	if cfg.SubmitWindow.String() != "30s" {
		t.Errorf("SubmitWindow = %v", cfg.SubmitWindow)
	}
	if cfg.ShutdownTimeout != 0 {
		t.Errorf("ShutdownTimeout = %v, invalid value should fall back to zero", cfg.ShutdownTimeout)
	}
}

func TestNewLoggerLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", "json")

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	log.Warn().Msg("shown")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "shown" || entry["service"] != "cleanblog" || entry["level"] != "warn" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "chatty", "json")

	log.Info().Msg("visible")
	if buf.Len() == 0 {
		t.Error("unknown level should fall back to info")
	}
}
