package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/emersion/go-vcard"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DIRECTORY_PATH", "DEFAULT_SLUG", "DATABASE_PATH", "ANALYTICS_BUFFER", "TRACK_RATE", "TRACK_BURST", "TRUST_PROXY", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AnalyticsBuffer != 256 {
		t.Errorf("AnalyticsBuffer = %d, want 256", cfg.AnalyticsBuffer)
	}
	if cfg.TrackRate != 1 || cfg.TrackBurst != 10 {
		t.Errorf("track = %v/%v, want 1/10", cfg.TrackRate, cfg.TrackBurst)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ANALYTICS_BUFFER", "zero"},
		{"ANALYTICS_BUFFER", "0"},
		{"TRACK_RATE", "-1"},
		{"TRACK_BURST", "0.5"},
		{"LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := loadConfig(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDirectoryDefaultOverride(t *testing.T) {
	dir, err := loadDirectory(config{DefaultSlug: "luis-mejia"})
	if err != nil {
		t.Fatalf("loadDirectory: %v", err)
	}
	if dir.DefaultSlug != "luis-mejia" {
		t.Errorf("DefaultSlug = %q, want luis-mejia", dir.DefaultSlug)
	}
}

func TestResolveCommand(t *testing.T) {
	t.Setenv("DIRECTORY_PATH", "")
	t.Setenv("DEFAULT_SLUG", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"subdomain", []string{"resolve", "--host", "luis.solware.agency"}, "found luis-mejia"},
		{"unknown subdomain", []string{"resolve", "--host", "nobody.solware.agency"}, `unknown subdomain "nobody"`},
		{"path", []string{"resolve", "--slug", "luis-mejia"}, "found luis-mejia"},
		{"default", []string{"resolve"}, "found eugenio-andreone"},
		{"unknown path", []string{"resolve", "--slug", "ghost"}, `not found "ghost", falls back to eugenio-andreone`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want to contain %q", out, tt.want)
			}
		})
	}
}

func TestVCardCommand(t *testing.T) {
	t.Setenv("DIRECTORY_PATH", "")

	out, err := runCmd(t, "vcard", "luis-mejia", "--lang", "en")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	card, err := vcard.NewDecoder(strings.NewReader(out)).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := card.PreferredValue(vcard.FieldFormattedName); got != "Luis Mejía" {
		t.Errorf("FN = %q, want Luis Mejía", got)
	}

	if _, err := runCmd(t, "vcard", "ghost"); err == nil {
		t.Error("expected error for unknown slug")
	}
}

func TestListCommand(t *testing.T) {
	t.Setenv("DIRECTORY_PATH", "")
	t.Setenv("DEFAULT_SLUG", "")

	out, err := runCmd(t, "list")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "eugenio-andreone\teugenio\t") || !strings.HasSuffix(lines[0], "(default)") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "luis-mejia\tluis\t") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
