// Package main provides the a11yref command line: search, show and list the accessibility
// reference, or browse it interactively.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		//nolint:forbidigo // main must exit with the command status code.
		os.Exit(1)
	}
}
