package main

import (
	"fmt"

	"github.com/sandevgo/deptdir/pkg/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration in .env format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		content, err := env.MarshalEnv(appCfg)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
