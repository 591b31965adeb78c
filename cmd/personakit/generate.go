package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/generate"
	"github.com/personakit/personakit/internal/output"
	"github.com/personakit/personakit/llm"
	"github.com/personakit/personakit/report"
)

const defaultModelBaseURL = "https://api.openai.com/v1"

// newGenerateCmd creates the generate command: run the full pipeline from
// statistical report to rendered personas.
func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		reportPath string
		template   string
		varFlags   []string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate personas from a statistical report",
		Long: `Generate parses the statistical report, fills the configured prompt
template with the derived variables, sends the prompt to the completion
model, and prints the resulting personas.

Variable precedence, lowest to highest: report, config vars, --var flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := generate.LoadConfig(configPath)
			if err != nil {
				return err
			}
			rep, err := report.ParseFile(reportPath)
			if err != nil {
				return err
			}
			cliVars, err := parseVarFlags(varFlags)
			if err != nil {
				return err
			}
			vars := generate.MergeVars(rep.Vars, generate.MergeVars(generate.StringVars(cfg.Vars), cliVars))

			src, err := cfg.Source()
			if err != nil {
				return err
			}
			modelURL := cfg.Model.BaseURL
			if modelURL == "" {
				modelURL = defaultModelBaseURL
			}
			var llmOpts []llm.Option
			if cfg.Model.Temperature > 0 {
				llmOpts = append(llmOpts, llm.WithTemperature(cfg.Model.Temperature))
			}
			client, err := llm.New(modelURL, cfg.Model.Name, cfg.APIKey(), llmOpts...)
			if err != nil {
				return err
			}

			name := cfg.Template
			if template != "" {
				name = template
			}
			gen := generate.New(personakit.New(src), client)
			personas, err := gen.Generate(cmd.Context(), name, vars)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(personas)
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderPersonas(personas, colorEnabled(cmd)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "personakit.yaml", "pipeline config file")
	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "statistical report file")
	cmd.Flags().StringVarP(&template, "template", "t", "", "template name (overrides config)")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "extra template variable as key=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print personas as JSON")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}
