package fsinit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/infra/config"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.InitSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	path := filepath.Join(tmp, "bashy.yaml")
	cfg, err := config.NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("template should load cleanly: %v", err)
	}

	def := domain.DefaultConfig()
	if cfg.Server != def.Server || cfg.Reply != def.Reply || cfg.Banner != def.Banner {
		t.Fatalf("template should match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	path := filepath.Join(tmp, "bashy.yaml")
	if err := os.WriteFile(path, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing bashy.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.InitSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read bashy.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected bashy.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.InitSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	b, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read bashy.yaml: %v", err)
	}
	if !strings.Contains(string(b), "bashy:") {
		t.Fatalf("expected bashy.yaml overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "new", "svc")

	if err := NewInitializer().Init(domain.InitSpec{Root: root}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "bashy.yaml")); err != nil {
		t.Fatalf("expected bashy.yaml: %v", err)
	}
}
