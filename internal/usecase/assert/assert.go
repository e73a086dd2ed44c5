package assert

import (
	"fmt"
	"mime"
	"strings"

	"github.com/ameerdhi7/bashy/internal/domain"
)

const maxQuoted = 64

func Status(expected int, got int) domain.CheckResult {
	if got == expected {
		return domain.CheckResult{
			Name:    "status",
			Passed:  true,
			Message: fmt.Sprintf("status %d", got),
		}
	}

	return domain.CheckResult{
		Name:    "status",
		Passed:  false,
		Message: fmt.Sprintf("expected status %d, got %d", expected, got),
	}
}

// ContentType compares media types and parameters, ignoring case and spacing.
func ContentType(expected string, got string) domain.CheckResult {
	if sameMediaType(expected, got) {
		return domain.CheckResult{
			Name:    "content_type",
			Passed:  true,
			Message: fmt.Sprintf("content type %q", got),
		}
	}

	return domain.CheckResult{
		Name:    "content_type",
		Passed:  false,
		Message: fmt.Sprintf("expected content type %q, got %q", expected, got),
	}
}

func Body(expected string, got string, truncated bool) domain.CheckResult {
	if !truncated && got == expected {
		return domain.CheckResult{
			Name:    "body",
			Passed:  true,
			Message: fmt.Sprintf("body %q", clamp(got)),
		}
	}

	msg := fmt.Sprintf("expected body %q, got %q", clamp(expected), clamp(got))
	if truncated {
		msg += " (truncated)"
	}
	return domain.CheckResult{
		Name:    "body",
		Passed:  false,
		Message: msg,
	}
}

func MaxLatency(maxMs int, latencyMs int64) domain.CheckResult {
	if latencyMs <= int64(maxMs) {
		return domain.CheckResult{
			Name:    "max_ms",
			Passed:  true,
			Message: fmt.Sprintf("latency %dms <= %dms", latencyMs, maxMs),
		}
	}

	return domain.CheckResult{
		Name:    "max_ms",
		Passed:  false,
		Message: fmt.Sprintf("expected latency <= %dms, got %dms", maxMs, latencyMs),
	}
}

// Evaluate applies the expectation against an observed probe.
// A probe that hit a transport error gets no checks; the error already fails it.
func Evaluate(exp domain.Expectation, res domain.ProbeResult) []domain.CheckResult {
	out := []domain.CheckResult{}
	if res.Error != nil {
		return out
	}

	if exp.Status != nil {
		out = append(out, Status(*exp.Status, res.StatusCode))
	}
	if exp.ContentType != nil {
		out = append(out, ContentType(*exp.ContentType, res.ContentType))
	}
	if exp.Body != nil {
		out = append(out, Body(*exp.Body, res.Body, res.Truncated))
	}
	if exp.MaxLatencyMS != nil {
		out = append(out, MaxLatency(*exp.MaxLatencyMS, res.LatencyMS))
	}
	return out
}

func sameMediaType(a, b string) bool {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return true
	}

	mtA, paramsA, errA := mime.ParseMediaType(a)
	mtB, paramsB, errB := mime.ParseMediaType(b)
	if errA != nil || errB != nil {
		return false
	}
	if mtA != mtB || len(paramsA) != len(paramsB) {
		return false
	}
	for k, v := range paramsA {
		if !strings.EqualFold(paramsB[k], v) {
			return false
		}
	}
	return true
}

func clamp(s string) string {
	r := []rune(s)
	if len(r) <= maxQuoted {
		return s
	}
	return string(r[:maxQuoted]) + "…"
}
