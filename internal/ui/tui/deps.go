package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
)

type Deps struct {
	// Ctx ends the dashboard and any in-flight probe when done.
	Ctx context.Context

	Prober ports.Prober

	Spec     domain.ProbeSpec
	Expect   domain.Expectation
	Interval time.Duration

	Logger *slog.Logger
	Debug  bool
}
