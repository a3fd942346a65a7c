package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/veridex/internal/evidence"
	"github.com/ppiankov/veridex/internal/llm"
	"github.com/ppiankov/veridex/internal/model"
)

var dedupOutput string

// dedupCmd streams evidence items through the two-tier duplicate checker.
// Useful for inspecting what the research loop would discard as items
// arrive, and for exercising a configured similarity provider in isolation.
var dedupCmd = &cobra.Command{
	Use:   "dedup <evidence.json>",
	Short: "Stream evidence items through the duplicate checker",
	Long: `Read a JSON array of evidence items and check each against the
items accepted before it, in input order.

Exact (case-insensitive) statement matches are always detected. The
semantic near-duplicate tier runs only when an LLM similarity provider
is configured; without one each check is reported as unavailable, not
as verified-unique.`,
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
		var items []model.EvidenceItem
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}

		provider, err := llm.NewFromConfig(cfg.LLM)
		if err != nil {
			return fmt.Errorf("similarity provider: %w", err)
		}
		if provider != nil && verbose {
			fmt.Fprintf(os.Stderr, "Semantic tier: %s\n", provider.Name())
		}

		deduper := evidence.NewDeduper(cfg.Filter.DeduplicationThreshold, llm.Func(provider))

		report := dedupReport{Checks: make([]dedupCheck, 0, len(items))}
		for _, item := range items {
			check := deduper.IsDuplicate(cmd.Context(), item)
			report.Checks = append(report.Checks, dedupCheck{
				ID:              item.ID,
				Duplicate:       check.Duplicate,
				MatchedID:       check.MatchedID,
				Method:          check.Method,
				SemanticChecked: check.SemanticChecked,
				Note:            check.Note,
			})
			if !check.Duplicate {
				report.Unique = append(report.Unique, item.ID)
			}
		}

		return writeJSON(report, dedupOutput)
	},
}

type dedupReport struct {
	Checks []dedupCheck `json:"checks"`
	Unique []string     `json:"unique"`
}

type dedupCheck struct {
	ID              string `json:"id"`
	Duplicate       bool   `json:"duplicate"`
	MatchedID       string `json:"matched_id,omitempty"`
	Method          string `json:"method,omitempty"`
	SemanticChecked bool   `json:"semantic_checked"`
	Note            string `json:"note,omitempty"`
}

func init() {
	dedupCmd.Flags().StringVarP(&dedupOutput, "output", "o", "", "write JSON to file instead of stdout")
	rootCmd.AddCommand(dedupCmd)
}
