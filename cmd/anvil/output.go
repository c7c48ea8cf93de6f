package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"anvil/internal/diag"
)

// useColor resolves the --color auto|on|off convention against stderr.
func useColor(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stderr), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
}

// newReporter builds the stderr reporter from the persistent flags.
func newReporter(cmd *cobra.Command) (*diag.Reporter, error) {
	colorOn, err := useColor(cmd)
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return &diag.Reporter{Out: os.Stderr, Color: colorOn, Quiet: quiet}, nil
}

func timingsEnabled(cmd *cobra.Command) bool {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && timings
}
