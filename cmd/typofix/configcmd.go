package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/typofix/pkg/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.GetAppConfigContent())
		},
	}
}
