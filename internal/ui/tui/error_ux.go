package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ameerdhi7/bashy/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, domain.ErrInvalidProbe) {
		return "Invalid probe URL"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "config") {
				return "Config not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindBind:
			return "Address unavailable"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Probe timed out"
	}

	return "Unexpected error (see logs)"
}
