package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/typofix/pkg/config"
	"github.com/arthur-debert/typofix/pkg/editor"
	"github.com/arthur-debert/typofix/pkg/logging"
	"github.com/arthur-debert/typofix/pkg/matcher"
	"github.com/arthur-debert/typofix/pkg/rules"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [file]",
		Short: MsgApplyShort,
		Long:  MsgApplyLong,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runApply,
	}
}

func runApply(cmd *cobra.Command, args []string) error {
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

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), MsgErrInput, err)
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgErrInput, err)
		return err
	}

	buf := editor.NewBuffer()
	m := matcher.New(ruleList, buf, matcher.WithMaxLookback(settings.MaxLookback))
	m.Watch(buf)

	// Replay the input as keystrokes so transformations fire the same
	// way they would in a live editor
	defer logging.LogDuration(time.Now(), "apply")
	for _, r := range string(data) {
		buf.InsertText(string(r))
	}

	fmt.Fprint(cmd.OutOrStdout(), buf.Text())
	return nil
}
