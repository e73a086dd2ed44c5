package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ameerdhi7/bashy/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderProbeDetails(res domain.ProbeResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", res.Method, res.URL))

	if res.Error != nil {
		b.WriteString("Error:\n")
		b.WriteString("  - kind: ")
		b.WriteString(string(res.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(res.Error.Message)
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Status: %d\nLatency: %dms\nContent-Type: %s\n", res.StatusCode, res.LatencyMS, res.ContentType))

	body := res.Body
	if body == "" {
		body = "(empty)"
	}
	b.WriteString("Body: ")
	b.WriteString(clampString(body, 200))
	if res.Truncated {
		b.WriteString(" (truncated)")
	}
	b.WriteString("\n")

	if len(res.Checks) > 0 {
		b.WriteString("\nChecks:\n")
		for _, c := range res.Checks {
			status := "FAIL"
			if c.Passed {
				status = "PASS"
			}
			b.WriteString("  - ")
			b.WriteString(c.Name)
			b.WriteString(" [")
			b.WriteString(status)
			b.WriteString("] ")
			b.WriteString(c.Message)
			b.WriteString("\n")
		}
	}

	return b.String()
}
