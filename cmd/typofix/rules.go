package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/typofix/pkg/config"
	"github.com/arthur-debert/typofix/pkg/rules"
	"github.com/arthur-debert/typofix/pkg/style"
)

func newRulesCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadFrom(configFile)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgErrConfig, err)
				return err
			}

			ruleList, err := rules.Resolve(settings.Rules)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgErrResolve, err)
				return err
			}

			styled := !plain && isatty.IsTerminal(os.Stdout.Fd())
			out := style.NewRenderer(styled).RenderRuleList(ruleList)
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain tab-separated output")
	return cmd
}
