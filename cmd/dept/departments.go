package main

import (
	"fmt"

	"github.com/sandevgo/deptdir/internal/core"
	"github.com/spf13/cobra"
)

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List the departments employees can be assigned to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range core.AllDepartments() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), d); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(departmentsCmd)
}
