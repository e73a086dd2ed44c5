package usecase

import (
	"context"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
	ucassert "github.com/ameerdhi7/bashy/internal/usecase/assert"
)

type Probe struct {
	prober ports.Prober
}

func NewProbe(p ports.Prober) *Probe {
	return &Probe{prober: p}
}

// Execute sends one probe and evaluates it against exp. Transport failures
// are reported on the result; only unusable specs and cancellation return an error.
func (uc *Probe) Execute(ctx context.Context, spec domain.ProbeSpec, exp domain.Expectation) (domain.ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProbeResult{}, err
	}

	res, err := uc.prober.Probe(ctx, spec)
	if err != nil {
		return domain.ProbeResult{}, err
	}

	res.Checks = ucassert.Evaluate(exp, res)
	return res, nil
}
