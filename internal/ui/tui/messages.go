package tui

import (
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
)

type tickMsg time.Time

type probeDoneMsg struct {
	res domain.ProbeResult
	err error
}
