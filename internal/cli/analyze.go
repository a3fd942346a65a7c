package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/veridex/internal/analyze"
	"github.com/ppiankov/veridex/internal/budget"
	"github.com/ppiankov/veridex/internal/model"
)

var analyzeOutput string

// analyzeCmd scores a single parsed claims/evidence file
var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.json>",
	Short: "Score a parsed claims/evidence file into a verdict",
	Long: `Run the scoring stages over one analysis input file.

The input is a JSON document with the thesis, extracted claims and
evidence items, as produced by the extraction/research stages:

  {"thesis": "...", "claims": [...], "evidence": [...], "reasoning": "..."}

The output is the full analysis record as JSON: filtered evidence with
per-item rejection reasons, per-claim gate results, the weighted truth
percentage, pseudoscience escalation and the publishability verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		var in analyze.Input
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}

		analyzer := analyze.NewAnalyzer(cfg, newLogger())
		tracker := budget.NewTracker(cfg.Budget) // One tracker per run
		res, err := analyzer.Run(cmd.Context(), in, tracker)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		return writeJSON(res, analyzeOutput)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write JSON to file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}

// loadConfig merges the viper sources over the built-in defaults.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	// API keys come from the environment, never the config file
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	return cfg, nil
}

// writeJSON renders v as indented JSON to path, or stdout when path is "".
func writeJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}
	return nil
}
