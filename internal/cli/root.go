package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug      bool
	configPath string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "bashy",
		Short:        "bashy answers every HTTP request with Hello World",
		Long:         "Runs an HTTP responder on $HOST:$PORT (default 0.0.0.0:3000).\nEvery request gets the same reply, whatever its method or path.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to bashy.yaml (optional; searched upward from the working directory if omitted)")

	cmd.AddCommand(
		serveCmd(opts),
		probeCmd(opts),
		watchCmd(opts),
		initCmd(),
		configCmd(opts),
		versionCmd(),
	)
	return cmd
}
