package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameerdhi7/bashy/internal/infra/httpserver"
	"github.com/ameerdhi7/bashy/internal/infra/logger"
	"github.com/ameerdhi7/bashy/internal/usecase"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the responder (same as running bashy with no command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		Dir:    cfg.Log.Dir,
		Debug:  opts.debug || cfg.Log.Debug,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer func() { _ = cleanup() }()

	log := logger.L()

	srv := httpserver.New(cfg.Reply,
		httpserver.WithLogger(log),
		httpserver.WithReadHeaderTimeout(cfg.Server.ReadHeaderTimeout),
		httpserver.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)

	return usecase.NewServe(srv, cmd.OutOrStdout(), log).Execute(cmd.Context(), cfg)
}
