package enrich

// Change is a single applied axis update on one record.
type Change struct {
	Slug string `json:"slug" yaml:"slug"`
	Axis string `json:"axis" yaml:"axis"`
	Old  string `json:"old" yaml:"old"`
	New  string `json:"new" yaml:"new"`
}

// AxisSummary aggregates one axis across the whole batch.
type AxisSummary struct {
	Changed    int            `json:"changed" yaml:"changed"`
	Unresolved int            `json:"unresolved" yaml:"unresolved"`
	Labels     map[string]int `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func (s *AxisSummary) assigned(label string) {
	s.Changed++
	if s.Labels == nil {
		s.Labels = make(map[string]int)
	}
	s.Labels[label]++
}

// Result is the outcome of one enrichment run.
type Result struct {
	ID       string                  `json:"id" yaml:"id"`
	Started  string                  `json:"started" yaml:"started"`
	Duration string                  `json:"duration" yaml:"duration"`
	DryRun   bool                    `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Files    int                     `json:"files" yaml:"files"`
	Modified int                     `json:"modified" yaml:"modified"`
	Axes     map[string]*AxisSummary `json:"axes" yaml:"axes"`
	Changes  []*Change               `json:"changes,omitempty" yaml:"changes,omitempty"`
}
