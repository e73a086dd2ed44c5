package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameerdhi7/bashy/internal/infra/fsinit"
	"github.com/ameerdhi7/bashy/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a bashy.yaml template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitConfig(fsinit.NewInitializer())
			if err := uc.Execute(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", path)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "directory to write bashy.yaml into")
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing bashy.yaml")
	return c
}
