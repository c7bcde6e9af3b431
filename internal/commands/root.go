// Package commands wires the storypoints CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "storypoints",
	Short: "A planning-poker estimation console",
	Long: `storypoints runs collaborative estimation sessions from the terminal.
A facilitator queues review items, participants vote against a countdown,
and results are tallied and archived round by round.`,
}

// SetVersion sets the build version information.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("storypoints %s (%s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)
}
