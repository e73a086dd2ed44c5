package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/ameerdhi7/bashy/internal/domain"
)

// BuildRequest builds an HTTP request from a domain ProbeSpec.
func BuildRequest(ctx context.Context, spec domain.ProbeSpec) (*http.Request, error) {
	raw := strings.TrimSpace(spec.URL)
	if raw == "" {
		return nil, invalidProbe(errors.New("url is required"))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidProbe(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, invalidProbe(errors.New("url scheme must be http or https"))
	}
	if u.Host == "" {
		return nil, invalidProbe(errors.New("url host is required"))
	}

	method := strings.ToUpper(strings.TrimSpace(spec.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body *strings.Reader
	if spec.Body != "" {
		body = strings.NewReader(spec.Body)
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, invalidProbe(err)
	}
	if spec.Body != "" {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}
	req.Header.Set("User-Agent", "bashy-probe")

	return req, nil
}

func invalidProbe(err error) error {
	return &domain.OpError{
		Op:   "httpclient.build",
		Kind: domain.KindInvalidConfig,
		Err:  errors.Join(domain.ErrInvalidProbe, err),
	}
}
