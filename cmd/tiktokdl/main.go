// Package main is the entrypoint of tiktokdl.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tiktokdl/internal/cmd"
	"tiktokdl/internal/domain/paths"
	"tiktokdl/internal/utils/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Run history is skipped (not fatal) without a home directory
	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run history disabled: %v\n", err)
	}

	// Cancel the active yt-dlp process on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cmd.Execute(ctx)
	defer func() {
		if cerr := logging.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", cerr)
		}
	}()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cmd.ExitCode(err)
}
