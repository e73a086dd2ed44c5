package httpprobe

import (
	"context"
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/infra/httpclient"
	"github.com/ameerdhi7/bashy/internal/ports"
)

type Prober struct {
	exec *httpclient.Executor
	now  func() time.Time
}

type Option func(*Prober)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(p *Prober) { p.now = now }
}

func New(exec *httpclient.Executor, opts ...Option) *Prober {
	if exec == nil {
		exec = httpclient.NewExecutor()
	}
	p := &Prober{
		exec: exec,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.Prober = (*Prober)(nil)

func (p *Prober) Probe(ctx context.Context, spec domain.ProbeSpec) (domain.ProbeResult, error) {
	req, err := httpclient.BuildRequest(ctx, spec)
	if err != nil {
		return domain.ProbeResult{}, err
	}

	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	result := domain.ProbeResult{
		URL:    req.URL.String(),
		Method: req.Method,
		At:     p.now().UTC(),
		Checks: []domain.CheckResult{},
	}

	resp, err := p.exec.Do(ctx, req)
	result.LatencyMS = resp.Duration.Milliseconds()
	result.StatusCode = resp.Status
	if err != nil {
		result.Error = domain.NewProbeError(err)
		return result, nil
	}

	result.ContentType = resp.Headers.Get("Content-Type")
	result.Body = string(resp.BodyBytes)
	result.Truncated = resp.Truncated
	return result, nil
}
