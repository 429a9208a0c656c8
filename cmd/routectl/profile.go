package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

// cpuProfilePath, when set via the persistent --cpuprofile flag, wraps
// the whole command invocation in a runtime/pprof CPU profile, grounded
// on the -cpuprofile flag example/yaotsuping/main.go exposes around its
// own simulation run. The dashboard's own /profile endpoint (diag
// package) additionally decodes a sampled profile through
// github.com/google/pprof/profile for callers that want JSON instead of
// a file.
var (
	cpuProfilePath string
	cpuProfileFile *os.File
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cpuProfilePath, "cpuprofile", "", "write a CPU profile to this path")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cpuProfilePath == "" {
			return nil
		}
		f, err := os.Create(cpuProfilePath)
		if err != nil {
			return fmt.Errorf("routectl: creating cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("routectl: starting cpu profile: %w", err)
		}
		cpuProfileFile = f
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if cpuProfileFile == nil {
			return
		}
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
	}
}
