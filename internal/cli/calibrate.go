package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/veridex/internal/calibration"
	"github.com/ppiankov/veridex/internal/model"
)

var (
	calibrateOutput string
	calibrateStrict bool
)

// calibrateCmd computes bias metrics over recorded mirrored-pair runs
var calibrateCmd = &cobra.Command{
	Use:   "calibrate <pairs.yaml>",
	Short: "Compute bias calibration metrics over mirrored claim pairs",
	Long: `Load mirrored left/right claim pair fixtures with their recorded
pipeline outputs and compute per-pair skew and run-level statistics.

A pair passes when its asymmetry-adjusted skew and failure-mode deltas
stay within the configured thresholds; the run passes when the pass
rate and the mean skew statistics do. With --strict the command exits
non-zero on a failing run, for use in CI.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pairs, err := calibration.LoadPairs(args[0])
		if err != nil {
			return err
		}

		metrics, aggregate := calibration.Run(pairs, cfg.Calibration)

		report := calibrationReport{Pairs: metrics, Aggregate: aggregate}
		if err := writeJSON(report, calibrateOutput); err != nil {
			return err
		}

		if calibrateStrict && !aggregate.Passed {
			return fmt.Errorf("calibration failed: %v", aggregate.FailureReasons)
		}
		return nil
	},
}

// calibrationReport is the stable JSON shape the HTML renderer consumes.
type calibrationReport struct {
	Pairs     []model.PairMetrics    `json:"pairs"`
	Aggregate model.AggregateMetrics `json:"aggregate"`
}

// MarshalJSON keeps the report shape explicit even when pairs are empty.
func (r calibrationReport) MarshalJSON() ([]byte, error) {
	type alias calibrationReport
	a := alias(r)
	if a.Pairs == nil {
		a.Pairs = []model.PairMetrics{}
	}
	return json.Marshal(a)
}

func init() {
	calibrateCmd.Flags().StringVarP(&calibrateOutput, "output", "o", "", "write JSON to file instead of stdout")
	calibrateCmd.Flags().BoolVar(&calibrateStrict, "strict", false, "exit non-zero when the run-level pass fails")
	rootCmd.AddCommand(calibrateCmd)
}
