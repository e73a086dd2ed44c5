package usecase

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/infra/httpserver"
	"github.com/ameerdhi7/bashy/internal/ports"
)

// fakeResponder records the address and reports a fixed bound address.
type fakeResponder struct {
	gotAddr string
	bound   net.Addr
	err     error
}

func (f *fakeResponder) ListenAndServe(_ context.Context, addr string, ready func(net.Addr)) error {
	f.gotAddr = addr
	if f.err != nil {
		return f.err
	}
	if ready != nil {
		ready(f.bound)
	}
	return nil
}

var _ ports.Responder = (*fakeResponder)(nil)

func TestServe_DefaultsBindAndAnnounce(t *testing.T) {
	f := &fakeResponder{bound: &net.TCPAddr{IP: net.IPv4zero, Port: 3000}}
	var out bytes.Buffer

	err := NewServe(f, &out, nil).Execute(context.Background(), domain.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.gotAddr != "0.0.0.0:3000" {
		t.Fatalf("expected bind on 0.0.0.0:3000, got %s", f.gotAddr)
	}
	if out.String() != "Server listening on http://0.0.0.0:3000\n" {
		t.Fatalf("unexpected announcement %q", out.String())
	}
}

func TestServe_PortAndHostFromConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "8080"

	f := &fakeResponder{bound: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}}
	var out bytes.Buffer

	if err := NewServe(f, &out, nil).Execute(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.gotAddr != "127.0.0.1:8080" {
		t.Fatalf("expected 127.0.0.1:8080, got %s", f.gotAddr)
	}
	if !strings.Contains(out.String(), "http://127.0.0.1:8080") {
		t.Fatalf("unexpected announcement %q", out.String())
	}
}

func TestServe_BindFailureNoAnnouncement(t *testing.T) {
	bindErr := &domain.OpError{Op: "httpserver.listen", Kind: domain.KindBind, Err: errors.New("address already in use")}
	f := &fakeResponder{err: bindErr}
	var out bytes.Buffer

	err := NewServe(f, &out, nil).Execute(context.Background(), domain.DefaultConfig())
	if !errors.Is(err, bindErr) {
		t.Fatalf("expected bind error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no announcement, got %q", out.String())
	}
}

func TestServe_BannerWithBoundAddr(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Banner = "up on {{addr}}"

	f := &fakeResponder{bound: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 41234}}
	var out bytes.Buffer

	if err := NewServe(f, &out, nil).Execute(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "up on 127.0.0.1:41234\n" {
		t.Fatalf("unexpected announcement %q", out.String())
	}
}

func TestServe_InvalidBannerFallsBack(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Banner = "{{nope}}"

	f := &fakeResponder{bound: &net.TCPAddr{IP: net.IPv4zero, Port: 3000}}
	var out bytes.Buffer

	if err := NewServe(f, &out, nil).Execute(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Server listening on http://0.0.0.0:3000\n" {
		t.Fatalf("expected default banner, got %q", out.String())
	}
}

func TestServe_RealResponderUntilCancel(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Banner = "{{addr}}"

	pr, pw := net.Pipe()
	defer pr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- NewServe(httpserver.New(cfg.Reply), pw, nil).Execute(ctx, cfg)
		pw.Close()
	}()

	buf := make([]byte, 64)
	n, err := pr.Read(buf)
	if err != nil {
		t.Fatalf("read announcement: %v", err)
	}
	addr := strings.TrimSpace(string(buf[:n]))

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Post("http://"+addr+"/anything", "text/plain", strings.NewReader("body"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop")
	}
}
