// Package demo is the command tree behind cmd/demo: a small CLI that
// drives a sample coopflow graph end to end, so the kernel's behavior
// can be inspected without writing a Go program against the library.
package demo

import (
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagTicks    int
)

// NewRootCmd creates the root cobra command for the coopflow demo CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coopflow-demo",
		Short: "coopflow-demo — run sample flow graphs against the kernel",
		Long:  "coopflow-demo drives small, hand-built flow graphs through a kernel and prints what happens each tick.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&flagTicks, "ticks", 20, "Number of ticks to run")

	root.AddCommand(
		newRunCmd(),
		newInspectCmd(),
	)

	return root
}
