package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"os"
	"syscall"
	"time"
)

// ProbeErrorKind is a high-level classification of transport errors.
type ProbeErrorKind string

const (
	ProbeErrorUnknown ProbeErrorKind = "unknown"
	ProbeErrorTimeout ProbeErrorKind = "timeout"
	ProbeErrorDNS     ProbeErrorKind = "dns"
	ProbeErrorConn    ProbeErrorKind = "connection"
)

// ProbeError represents a structured error produced by a prober.
type ProbeError struct {
	Kind    ProbeErrorKind `json:"kind"`
	Message string         `json:"message"`
}

// ProbeSpec describes one request sent to a responder.
type ProbeSpec struct {
	URL     string
	Method  string
	Body    string
	Timeout time.Duration
}

// Expectation is what a probe checks the response against.
// Nil fields are not checked.
type Expectation struct {
	Status       *int
	ContentType  *string
	Body         *string
	MaxLatencyMS *int
}

// ExpectReply builds an Expectation matching a configured reply exactly.
func ExpectReply(r Reply) Expectation {
	status := r.Status
	ct := r.ContentType
	body := r.Body
	return Expectation{
		Status:      &status,
		ContentType: &ct,
		Body:        &body,
	}
}

// CheckResult is the output of a single check.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ProbeResult represents the outcome of a single probe.
type ProbeResult struct {
	URL    string    `json:"url"`
	Method string    `json:"method"`
	At     time.Time `json:"at"`

	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type,omitempty"`
	Body        string `json:"body"`
	Truncated   bool   `json:"truncated,omitempty"`
	LatencyMS   int64  `json:"latency_ms"`

	Checks []CheckResult `json:"checks"`
	Error  *ProbeError   `json:"error,omitempty"`
}

// Failed reports whether the probe hit a transport error or a failed check.
func (r ProbeResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

// NewProbeError classifies err into a ProbeError.
func NewProbeError(err error) *ProbeError {
	if err == nil {
		return nil
	}
	return &ProbeError{
		Kind:    ClassifyProbeError(err),
		Message: err.Error(),
	}
}

func ClassifyProbeError(err error) ProbeErrorKind {
	if err == nil {
		return ProbeErrorUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ProbeErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ProbeErrorDNS
	}

	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return ProbeErrorTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ProbeErrorTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return ProbeErrorConn
	}

	var oe *net.OpError
	if errors.As(err, &oe) {
		return ProbeErrorConn
	}

	return ProbeErrorUnknown
}
