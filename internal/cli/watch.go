package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ameerdhi7/bashy/internal/infra/httpprobe"
	"github.com/ameerdhi7/bashy/internal/infra/logger"
	"github.com/ameerdhi7/bashy/internal/ui/tui"
)

func watchCmd(root *rootOptions) *cobra.Command {
	opts := probeOptions{}
	var interval time.Duration

	c := &cobra.Command{
		Use:   "watch",
		Short: "Probe a responder on an interval in a terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			// The dashboard owns the terminal; logs go to a file or nowhere.
			logCfg := logger.Config{Dir: cfg.Log.Dir, Debug: root.debug || cfg.Log.Debug, Writer: io.Discard}
			cleanup, err := logger.Setup(logCfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			defer func() { _ = cleanup() }()

			spec, exp := buildProbe(cfg, opts)
			err = tui.Run(tui.Deps{
				Ctx:      cmd.Context(),
				Prober:   httpprobe.New(nil),
				Spec:     spec,
				Expect:   exp,
				Interval: interval,
				Logger:   logger.L(),
				Debug:    logCfg.Debug,
			})
			if p := logger.Path(); p != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Logs: %s\n", p)
			}
			return err
		},
	}

	c.Flags().StringVar(&opts.url, "url", "", "URL to probe (default: the configured host and port)")
	c.Flags().StringVarP(&opts.method, "method", "X", "GET", "HTTP method")
	c.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Second, "request timeout")
	c.Flags().IntVar(&opts.maxMS, "max-ms", 0, "fail if latency exceeds this many milliseconds (0 disables)")
	c.Flags().DurationVar(&interval, "interval", time.Second, "time between probes")
	return c
}
