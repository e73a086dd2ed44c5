package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join("testdata", "bashy.yaml")
	cfg, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("expected host 127.0.0.1, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected integer port to map to \"8080\", got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("expected read header timeout 2s, got %s", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Reply.Body != "Hello from config" {
		t.Fatalf("expected body override, got %q", cfg.Reply.Body)
	}
	if cfg.Reply.Status != 200 || cfg.Reply.ContentType != domain.DefaultReplyContentType {
		t.Fatalf("expected untouched reply fields to keep defaults, got %+v", cfg.Reply)
	}
	if cfg.Banner != "listening on {{addr}}" {
		t.Fatalf("unexpected banner %q", cfg.Banner)
	}
	if !cfg.Log.Debug {
		t.Fatalf("expected debug=true")
	}
	if cfg.Source != path {
		t.Fatalf("expected source %q, got %q", path, cfg.Source)
	}
}

func TestLoadFileInvalidField(t *testing.T) {
	path := filepath.Join("testdata", "bashy_invalid.yaml")
	_, err := NewLoader().LoadFile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "bashy.reply.status") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadFileBrokenYAML(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join("testdata", "bashy_broken.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.Port = "9090"

	b, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(b)
	for _, want := range []string{"bashy:", "host: 0.0.0.0", "9090", "Hello World", "shutdown_timeout: 5s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
