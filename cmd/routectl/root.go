// Command routectl is a developer CLI for driving a routing engine
// instance: issuing Route/DeRoute/MoveData calls, dumping grid state,
// and resetting switches. It is a thin operator tool, not a
// replacement for any vendor test harness.
package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:   "routectl",
	Short: "routectl drives a stream-routing engine instance from the command line.",
	Long: `routectl drives a stream-routing engine instance from the command ` +
		`line: discover and commit routes, move data across them, and inspect ` +
		`or reset switch state.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
		return
	}
	atexit.Exit(0)
}
