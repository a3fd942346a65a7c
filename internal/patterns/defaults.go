package patterns

// Group names used by the scoring components. Custom registries may extend
// these but components only consult the names below.
const (
	GroupOpinionMarkers     = "opinion_markers"
	GroupVaguePhrases       = "vague_phrases"
	GroupSpecificityMarkers = "specificity_markers"
	GroupFutureMarkers      = "future_markers"
	GroupUncertaintyMarkers = "uncertainty_markers"

	GroupHarmDeath  = "harm_death"
	GroupHarmSafety = "harm_safety"
	GroupHarmCrime  = "harm_crime"

	GroupPoliticalSources    = "political_sources"
	GroupDocumentedEvidence  = "documented_evidence"
	GroupContestationMarkers = "contestation_markers"

	GroupAttribution = "attribution"
	GroupTemporal    = "temporal"
	GroupCitation    = "citation"
	GroupNumber      = "number"

	GroupDebunkIndicators = "debunk_indicators"

	// Pseudoscience categories share a prefix so the detector can
	// enumerate them without a hardcoded list.
	PseudoPrefix = "pseudo/"
)

// DefaultGroups returns the built-in matcher groups. Literal entries match
// case-insensitively on word boundaries; "re:" entries are raw regexes.
func DefaultGroups() map[string][]string {
	return map[string][]string{
		GroupOpinionMarkers: {
			"i think", "i believe", "in my opinion", "arguably", "best",
			"worst", "beautiful", "ugly", "should", "ought to", "terrible",
			"wonderful", "disgusting", "amazing", "overrated", "underrated",
		},
		GroupVaguePhrases: {
			"some say", "many believe", "it is said", "people think",
			"experts suggest", "sources claim", "reportedly", "allegedly",
			"some critics", "observers note", "it is widely believed",
		},
		GroupSpecificityMarkers: {
			`re:\b\d+(\.\d+)?\s*(%|percent|million|billion|thousand)\b`,
			`re:\b(19|20)\d{2}\b`,
			`re:\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`,
			"according to", "published", "measured", "recorded", "census",
			"study", "report", "survey", "dataset",
		},
		GroupFutureMarkers: {
			"will be", "is going to", "is expected to", "by 2030", "by 2040",
			"by 2050", "forecast", "is projected to", "next year", "next decade",
		},
		GroupUncertaintyMarkers: {
			"unclear", "uncertain", "may be", "might be", "possibly",
			"it is not known", "inconclusive", "cannot be determined",
			"insufficient evidence", "mixed evidence",
		},
		GroupHarmDeath: {
			"death", "deaths", "died", "fatal", "fatality", "killed",
			"lethal", "mortality", "suicide", "overdose",
		},
		GroupHarmSafety: {
			"injury", "injuries", "injured", "poisoning", "toxic",
			"dangerous", "unsafe", "hazard", "outbreak", "contamination",
			"recall", "side effect", "hospitalized",
		},
		GroupHarmCrime: {
			"fraud", "assault", "abuse", "trafficking", "murder",
			"terrorism", "kidnapping", "extortion", "arson",
		},
		GroupPoliticalSources: {
			"government", "ministry", "minister", "spokesperson",
			"opposition", "party", "senator", "congressman", "parliament",
			"embassy", "diplomat", "diplomatic", "white house", "kremlin",
			"state department", "foreign office", "campaign", "politician",
		},
		GroupDocumentedEvidence: {
			"statute", "section", "article", "pursuant to", "court ruling",
			"verdict", "audit", "measurement", "peer-reviewed",
			`re:\b(report|study|investigation)\s+(no\.?|number)\s*\d+`,
			`re:\b\d+\s*(pages|exhibits|samples|records)\b`,
			`re:\bcase\s+no\.?\s*[\w-]+`,
		},
		GroupContestationMarkers: {
			"disputed", "contested", "denies", "denied", "refuted",
			"rejected", "challenged", "contradicts", "disagrees",
			"calls into question", "casts doubt",
		},
		GroupAttribution: {
			`re:\b(said|says|stated|told|according to|argued|wrote|testified|explained)\b`,
			`re:\b(dr|prof|professor)\.?\s+[A-Z]`,
			`re:"[^"]{10,}"`,
		},
		GroupTemporal: {
			`re:\b(19|20)\d{2}\b`,
			`re:\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}\b`,
			`re:\b\d{1,2}\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`,
			"yesterday", "last week", "last month", "last year",
			`re:\bon\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
		},
		GroupCitation: {
			`re:\b(section|sec\.|§)\s*\d+`,
			`re:\barticle\s+\d+`,
			`re:\b(act|code|statute|regulation|directive)\b.*\b\d{4}\b`,
			`re:\b\d+\s+U\.?S\.?C\.?\s*§?\s*\d+`,
			`re:\bcase\s+(no\.?|number)\s*[\w/-]+`,
		},
		GroupNumber: {
			`re:\d`,
		},
		GroupDebunkIndicators: {
			"debunked", "discredited", "retracted", "pseudoscience",
			"no scientific evidence", "scientific consensus rejects",
			"failed replication", "hoax", "fabricated data",
		},
		PseudoPrefix + "free_energy": {
			"perpetual motion", "free energy", "zero-point energy",
			"overunity", "violates thermodynamics",
		},
		PseudoPrefix + "quantum_mysticism": {
			"quantum healing", "quantum consciousness", "vibrational frequency",
			"energy field healing", "quantum entanglement of minds",
		},
		PseudoPrefix + "miracle_cures": {
			"miracle cure", "cures all diseases", "doctors hate",
			"natural remedy they don't want", "detox cleanse", "cancer cure suppressed",
		},
		PseudoPrefix + "ancient_knowledge": {
			"ancient aliens", "lost civilization technology", "forbidden archaeology",
			"pyramids were power plants",
		},
		PseudoPrefix + "suppressed_science": {
			"big pharma conspiracy", "suppressed by the establishment",
			"mainstream science hides", "what scientists won't tell you",
		},
	}
}
