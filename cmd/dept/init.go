package main

import (
	"github.com/sandevgo/deptdir/internal/config"
	"github.com/sandevgo/deptdir/internal/service/installer"
	"github.com/sandevgo/deptdir/pkg/log"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create the runtime .env file interactively",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		defaults, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		state, err := installer.RunWizard(config.GetRuntimePath(), *defaults)
		if err != nil {
			return err
		}

		logger.Info().Str("path", state.EnvPath).Msg("configuration saved. You can now run 'dept'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
