package analyze

import (
	"context"
	"log/slog"

	"github.com/ppiankov/veridex/internal/budget"
	"github.com/ppiankov/veridex/internal/classify"
	"github.com/ppiankov/veridex/internal/evidence"
	"github.com/ppiankov/veridex/internal/gate"
	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/patterns"
	"github.com/ppiankov/veridex/internal/pseudo"
	"github.com/ppiankov/veridex/internal/score"
)

// Analyzer runs the scoring stages over one set of already-parsed claims
// and evidence: filter, contestation validation, claim gate, aggregation,
// pseudoscience escalation, verdict gate. It performs no I/O of its own.
type Analyzer struct {
	filter     *evidence.Filter
	classifier *classify.Classifier
	gate1      *gate.Gate1
	gate4      *gate.Gate4
	detector   *pseudo.Detector
	cfg        *model.Config
	logger     *slog.Logger
}

// NewAnalyzer creates an analyzer from configuration. A nil config uses the
// defaults; a nil logger discards nothing but logs to the default handler.
func NewAnalyzer(cfg *model.Config, logger *slog.Logger) *Analyzer {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	reg := patterns.NewRegistry(cfg.Patterns)

	return &Analyzer{
		filter:     evidence.NewFilter(reg, cfg.Filter),
		classifier: classify.NewClassifier(reg),
		gate1:      gate.NewGate1(reg),
		gate4:      gate.NewGate4(reg),
		detector:   pseudo.NewDetector(reg),
		cfg:        cfg,
		logger:     logger,
	}
}

// Input is one analysis run's worth of parsed records from the extraction
// and research stages.
type Input struct {
	Thesis    string               `json:"thesis"`
	Claims    []model.Claim        `json:"claims"`
	Evidence  []model.EvidenceItem `json:"evidence"`
	Reasoning string               `json:"reasoning,omitempty"` // Verdict reasoning from the research stage
}

// Analysis is the complete output of one run, shaped for the downstream
// report renderer.
type Analysis struct {
	Claims            []model.Claim           `json:"claims"`
	ClaimValidations  []model.ClaimValidation `json:"claim_validations"`
	Evidence          evidence.Result         `json:"evidence"`
	TruthPercentage   int                     `json:"truth_percentage"`
	Pseudoscience     pseudo.Detection        `json:"pseudoscience"`
	Escalation        pseudo.Escalation       `json:"escalation"`
	VerdictValidation model.VerdictValidation `json:"verdict_validation"`
	Budget            model.BudgetUsage       `json:"budget"`
}

// Run executes the scoring stages. The tracker is owned by this run and
// must not be shared; a nil tracker gets a fresh one from the configured
// budget.
func (a *Analyzer) Run(ctx context.Context, in Input, tracker *budget.Tracker) (*Analysis, error) {
	if tracker == nil {
		tracker = budget.NewTracker(a.cfg.Budget)
	}

	// 1. Filter and deduplicate evidence
	filtered := a.filter.Filter(in.Evidence)
	a.logger.Debug("evidence filtered",
		"input", filtered.Stats.Input, "kept", filtered.Stats.Kept, "rejected", filtered.Stats.Rejected)

	// 2. Annotate claims: harm fallback, then contestation validation
	claims := make([]model.Claim, len(in.Claims))
	copy(claims, in.Claims)
	for i := range claims {
		if claims[i].HarmPotential == "" {
			claims[i].HarmPotential = a.classifier.DetectHarmPotential(claims[i].Statement)
		}
	}
	claims = a.classifier.ValidateContestation(claims)

	// 3. Gate 1: only claims that pass contribute to the verdict
	validations := make([]model.ClaimValidation, 0, len(claims))
	var scored []model.Claim
	isCentral := false
	for _, c := range claims {
		v := a.gate1.Validate(c)
		validations = append(validations, v)
		if v.Passed {
			scored = append(scored, c)
		}
		if c.IsCentral {
			isCentral = true
		}
	}

	// 4. Aggregate
	truth := score.WeightedVerdictAverage(scored)

	// 5. Pseudoscience escalation over the thesis and claim statements
	detectText := in.Thesis
	for _, c := range claims {
		detectText += " " + c.Statement
	}
	detection := a.detector.Detect(detectText)
	escalation := pseudo.Escalate(truth, overallConfidence(scored), detection)
	if escalation.Applied {
		a.logger.Warn("pseudoscience escalation applied",
			"severity", escalation.Severity, "truth", escalation.Truth)
		truth = escalation.Truth
	}

	// 6. Gate 4 over the kept evidence
	verdictValidation := a.gate4.Validate(gate.Verdict{
		Evidence:  filtered.Kept,
		Reasoning: in.Reasoning,
		IsCentral: isCentral,
	})
	if !verdictValidation.Publishable {
		a.logger.Warn("verdict not publishable",
			"tier", verdictValidation.Tier, "reasons", verdictValidation.FailureReasons)
	}

	return &Analysis{
		Claims:            claims,
		ClaimValidations:  validations,
		Evidence:          filtered,
		TruthPercentage:   truth,
		Pseudoscience:     detection,
		Escalation:        escalation,
		VerdictValidation: verdictValidation,
		Budget:            tracker.Usage(),
	}, nil
}

// overallConfidence averages claim confidence over the scored claims,
// falling back to the neutral 50 when nothing scored.
func overallConfidence(claims []model.Claim) int {
	if len(claims) == 0 {
		return 50
	}
	sum := 0
	for _, c := range claims {
		sum += c.ConfidenceOrDefault()
	}
	return sum / len(claims)
}
