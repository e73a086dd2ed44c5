package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameerdhi7/bashy/internal/usecase"
)

const minInterval = 100 * time.Millisecond

func cmdTick(interval time.Duration) tea.Cmd {
	if interval < minInterval {
		interval = minInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func cmdProbe(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Prober == nil {
			return probeDoneMsg{err: errors.New("Prober is nil")}
		}

		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}

		timeout := deps.Spec.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		parent := deps.Ctx
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithTimeout(parent, timeout+time.Second)
		defer cancel()

		res, err := usecase.NewProbe(deps.Prober).Execute(ctx, deps.Spec, deps.Expect)
		switch {
		case err != nil:
			log.Error("probe.failed", "url", deps.Spec.URL, "err", err)
		case res.Error != nil:
			log.Warn("probe.error",
				"url", res.URL,
				"kind", string(res.Error.Kind),
				"message", res.Error.Message,
				"latency_ms", res.LatencyMS,
			)
		case res.Failed():
			log.Warn("probe.mismatch", "url", res.URL, "status", res.StatusCode, "latency_ms", res.LatencyMS)
		case deps.Debug:
			log.Debug("probe.ok", "url", res.URL, "status", res.StatusCode, "latency_ms", res.LatencyMS)
		}

		return probeDoneMsg{res: res, err: err}
	}
}
