package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwx/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info("casex"))
		},
	}
}
