package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/personakit/personakit/internal/output"
	"github.com/personakit/personakit/report"
)

// newReportCmd creates the report command: parse a statistical report and
// show the variables it derives, for checking against template placeholders.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>",
		Short: "Show the template variables derived from a statistical report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.ParseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderVars(rep.Vars, colorEnabled(cmd)))
			return nil
		},
	}
}
