package domain

// Report is the assembled output for one recommendation.
// Destination is set only when the model text carried a destination marker;
// Cost and Reviews only when that destination is a catalog entry.
type Report struct {
	RawText     string
	Text        string // RawText plus any enrichment lines
	Destination *string
	Cost        *CostBreakdown
	Reviews     []string
}

// Enriched reports whether cost and reviews were appended.
func (r Report) Enriched() bool { return r.Cost != nil }
