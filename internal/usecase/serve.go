package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/ameerdhi7/bashy/internal/app/template"
	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
)

type Serve struct {
	responder ports.Responder
	out       io.Writer
	log       *slog.Logger
}

func NewServe(r ports.Responder, out io.Writer, log *slog.Logger) *Serve {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Serve{responder: r, out: out, log: log}
}

// Execute binds the configured address and serves until ctx is done.
// The banner line is written once, after the bind succeeds.
func (uc *Serve) Execute(ctx context.Context, cfg domain.Config) error {
	addr := cfg.Server.Address()

	uc.log.Debug("server.bind", "addr", addr, "config", cfg.Source)

	err := uc.responder.ListenAndServe(ctx, addr, func(bound net.Addr) {
		fmt.Fprintln(uc.out, uc.banner(cfg, bound))
		uc.log.Info("server.listening",
			"addr", bound.String(),
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
	})
	if err != nil {
		uc.log.Error("server.failed", "addr", addr, "err", err)
		return err
	}

	uc.log.Info("server.stopped", "addr", addr)
	return nil
}

func (uc *Serve) banner(cfg domain.Config, bound net.Addr) string {
	vars := map[string]string{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
		"addr": bound.String(),
	}

	line, err := template.RenderString(cfg.Banner, vars)
	if err != nil {
		uc.log.Warn("server.banner.invalid", "banner", cfg.Banner, "err", err)
		line, _ = template.RenderString(domain.DefaultBanner, vars)
	}
	return line
}
