package calibration

import (
	"fmt"
	"os"

	"github.com/ppiankov/veridex/internal/model"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk shape of a calibration fixture set.
type fixtureFile struct {
	Pairs []model.PairFixture `yaml:"pairs"`
}

// LoadPairs reads mirrored-pair fixtures from a YAML file.
func LoadPairs(path string) ([]model.PairFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pairs: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pairs %s: %w", path, err)
	}
	if len(file.Pairs) == 0 {
		return nil, fmt.Errorf("no pairs in %s", path)
	}

	seen := make(map[string]bool, len(file.Pairs))
	for i, p := range file.Pairs {
		if p.ID == "" {
			return nil, fmt.Errorf("pair %d in %s has no id", i, path)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate pair id %q in %s", p.ID, path)
		}
		seen[p.ID] = true
	}

	return file.Pairs, nil
}

// Run computes per-pair and aggregate metrics for a fixture set.
func Run(pairs []model.PairFixture, cfg model.CalibrationConfig) ([]model.PairMetrics, model.AggregateMetrics) {
	metrics := make([]model.PairMetrics, 0, len(pairs))
	for _, fix := range pairs {
		metrics = append(metrics, ComputePair(fix, cfg))
	}
	return metrics, Aggregate(metrics, cfg)
}
