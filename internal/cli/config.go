package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameerdhi7/bashy/internal/infra/config"
)

func configCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration (file and environment applied)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			source := cfg.Source
			if source == "" {
				source = "defaults"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# source: %s\n", source)
			_, err = w.Write(out)
			return err
		},
	}
}
