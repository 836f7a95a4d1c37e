package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcpdeck/mcpdeck/cmd"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Optional .env for local overrides (MCPDECK_HOME etc.); absence is fine.
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
