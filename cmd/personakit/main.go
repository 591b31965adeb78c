// Package main provides the entry point for the personakit CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion())); err != nil {
		return 1
	}
	return 0
}

// newRootCmd creates the root command for the personakit CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personakit",
		Short: "Generate audience personas from statistical reports",
		Long: `Personakit turns a pre-rendered statistical report into audience personas:
it derives template variables from the report, fills prompt templates with
them, and sends the prompt to a completion model.

Templates are plain text documents with {placeholder} markers, loaded from a
local directory or an HTTP location and cached for the life of the process.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	cmd.PersistentFlags().String("color", "auto", "color output: auto, always, never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

// colorEnabled resolves the --color persistent flag against TTY detection.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	return resolveColor(mode)
}
