package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/infra/httpprobe"
	"github.com/ameerdhi7/bashy/internal/usecase"
)

type probeOptions struct {
	url     string
	method  string
	data    string
	timeout time.Duration
	maxMS   int
	format  string
}

func probeCmd(root *rootOptions) *cobra.Command {
	opts := probeOptions{}

	c := &cobra.Command{
		Use:   "probe",
		Short: "Send one request to a responder and check the reply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			spec, exp := buildProbe(cfg, opts)
			res, err := usecase.NewProbe(httpprobe.New(nil)).Execute(cmd.Context(), spec, exp)
			if err != nil {
				return err
			}

			if err := printProbe(cmd.OutOrStdout(), res, opts.format); err != nil {
				return err
			}
			if res.Failed() {
				return fmt.Errorf("probe failed (%s)", failureSummary(res))
			}
			return nil
		},
	}

	c.Flags().StringVar(&opts.url, "url", "", "URL to probe (default: the configured host and port)")
	c.Flags().StringVarP(&opts.method, "method", "X", "GET", "HTTP method")
	c.Flags().StringVarP(&opts.data, "data", "d", "", "request body")
	c.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "request timeout")
	c.Flags().IntVar(&opts.maxMS, "max-ms", 0, "fail if latency exceeds this many milliseconds (0 disables)")
	c.Flags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")
	return c
}

func buildProbe(cfg domain.Config, opts probeOptions) (domain.ProbeSpec, domain.Expectation) {
	url := opts.url
	if url == "" {
		url = localURL(cfg.Server)
	}

	spec := domain.ProbeSpec{
		URL:     url,
		Method:  opts.method,
		Body:    opts.data,
		Timeout: opts.timeout,
	}

	exp := domain.ExpectReply(cfg.Reply)
	// HEAD responses carry headers only.
	if strings.EqualFold(strings.TrimSpace(spec.Method), http.MethodHead) {
		exp.Body = nil
	}
	if opts.maxMS > 0 {
		max := opts.maxMS
		exp.MaxLatencyMS = &max
	}
	return spec, exp
}

func printProbe(w io.Writer, res domain.ProbeResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "pretty", "":
		printPrettyProbe(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyProbe(w io.Writer, res domain.ProbeResult) {
	status := "OK"
	if res.Failed() {
		status = "FAIL"
	}

	fmt.Fprintf(w, "[%s] %s %s %dms\n", status, res.Method, res.URL, res.LatencyMS)

	if res.Error != nil {
		fmt.Fprintf(w, "  error: %s (%s)\n", res.Error.Message, res.Error.Kind)
		return
	}

	fmt.Fprintf(w, "  status: %d\n", res.StatusCode)
	if res.ContentType != "" {
		fmt.Fprintf(w, "  content-type: %s\n", res.ContentType)
	}

	if len(res.Checks) > 0 {
		pass, fail := countChecks(res.Checks)
		fmt.Fprintf(w, "  checks: %d pass / %d fail\n", pass, fail)
		for _, c := range res.Checks {
			mark := "✓"
			if !c.Passed {
				mark = "✗"
			}
			fmt.Fprintf(w, "    %s %s: %s\n", mark, c.Name, c.Message)
		}
	}
}

func countChecks(cs []domain.CheckResult) (pass, fail int) {
	for _, c := range cs {
		if c.Passed {
			pass++
		} else {
			fail++
		}
	}
	return
}

func failureSummary(res domain.ProbeResult) string {
	if res.Error != nil {
		return string(res.Error.Kind)
	}
	_, fail := countChecks(res.Checks)
	return fmt.Sprintf("%d failed check(s)", fail)
}
