// Package enrich drives batch classification of an agent catalog:
// every descriptor still carrying an axis sentinel is run through the
// classifier and, when a label is accepted, updated and written back.
package enrich

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mchmarny/agentctl/pkg/agent"
	"github.com/mchmarny/agentctl/pkg/infer"
)

// Enricher runs one classification pass over a catalog.
type Enricher struct {
	store      *agent.Store
	classifier *infer.Classifier
	dryRun     bool
}

// New creates an Enricher. When dryRun is set, no descriptor is
// written back.
func New(store *agent.Store, classifier *infer.Classifier, dryRun bool) (*Enricher, error) {
	if store == nil {
		return nil, errors.New("store required")
	}
	if classifier == nil {
		return nil, errors.New("classifier required")
	}
	return &Enricher{store: store, classifier: classifier, dryRun: dryRun}, nil
}

// Run processes every descriptor in the catalog and returns the batch
// result. Records whose axis values are already set are left alone;
// inference only ever fills sentinels.
func (e *Enricher) Run() (*Result, error) {
	files, err := e.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "error listing catalog")
	}

	start := time.Now()
	res := &Result{
		ID:      uuid.NewString(),
		Started: start.UTC().Format(time.RFC3339),
		DryRun:  e.dryRun,
		Files:   len(files),
		Axes:    make(map[string]*AxisSummary, len(infer.Axes)),
		Changes: make([]*Change, 0),
	}
	for _, axis := range infer.Axes {
		res.Axes[string(axis)] = &AxisSummary{}
	}

	for _, f := range files {
		a, err := e.store.Load(f)
		if err != nil {
			return nil, errors.Wrapf(err, "error loading descriptor: %s", f)
		}

		changes := e.enrichAgent(a, filepath.Base(f), res)
		if len(changes) == 0 {
			continue
		}

		res.Modified++
		res.Changes = append(res.Changes, changes...)

		if e.dryRun {
			log.Debugf("dry run, skipping write: %s", f)
			continue
		}
		if err := e.store.Save(f, a); err != nil {
			return nil, errors.Wrapf(err, "error saving descriptor: %s", f)
		}
	}

	res.Duration = time.Since(start).String()
	return res, nil
}

// enrichAgent evaluates the three axes independently. Each axis runs
// only when the record still carries that axis's sentinel.
func (e *Enricher) enrichAgent(a agent.Agent, fallbackSlug string, res *Result) []*Change {
	slug := a.Slug()
	if slug == "" {
		slug = fallbackSlug
	}

	changes := make([]*Change, 0)
	for _, axis := range infer.Axes {
		sum := res.Axes[string(axis)]
		old := a.Str(string(axis))
		if old != axis.Sentinel() {
			continue
		}

		label, ok := e.classifier.Infer(axis, a)
		if !ok {
			sum.Unresolved++
			continue
		}

		a.Set(string(axis), label)
		sum.assigned(label)
		changes = append(changes, &Change{
			Slug: slug,
			Axis: string(axis),
			Old:  old,
			New:  label,
		})
		log.Debugf("%s: %s %s -> %s", slug, axis, old, label)
	}
	return changes
}
