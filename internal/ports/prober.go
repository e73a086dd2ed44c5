package ports

import (
	"context"

	"github.com/ameerdhi7/bashy/internal/domain"
)

// Prober sends a single request to a responder and records what came back.
// Transport failures are reported in ProbeResult.Error; the returned error is
// reserved for probes that could not be built.
type Prober interface {
	Probe(ctx context.Context, spec domain.ProbeSpec) (domain.ProbeResult, error)
}
