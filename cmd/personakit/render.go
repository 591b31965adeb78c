package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/personakit/personakit"
)

// newRenderCmd creates the render command: resolve a template and print the
// filled prompt without calling any model.
func newRenderCmd() *cobra.Command {
	var (
		templatesDir string
		baseURL      string
		authToken    string
		varFlags     []string
	)
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Resolve a template and fill its placeholders",
		Long: `Render loads the named template document, substitutes {placeholder}
markers with the supplied --var values, and prints the resulting prompt.
Placeholders without a matching variable are left untouched.

Templates come from --templates (directory), --url (HTTP), or the builtin
set embedded in the binary when neither is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := buildSource(templatesDir, baseURL, authToken)
			if err != nil {
				return err
			}
			vars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			engine := personakit.New(src)
			prompt, err := engine.Fill(cmd.Context(), args[0], vars)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
	cmd.Flags().StringVar(&templatesDir, "templates", "", "directory containing template documents")
	cmd.Flags().StringVar(&baseURL, "url", "", "HTTP base URL for template documents")
	cmd.Flags().StringVar(&authToken, "token", "", "Bearer token for the template URL")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "template variable as key=value (repeatable)")
	return cmd
}
