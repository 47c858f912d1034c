package data

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/mchmarny/agentctl/pkg/enrich"
)

const (
	insertRunSQL = `INSERT INTO run (id, run_date, dry_run, files, modified, duration)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	insertRunAxisSQL = `INSERT INTO run_axis (run_id, axis, changed, unresolved)
		VALUES (?, ?, ?, ?)
	`

	insertRunLabelSQL = `INSERT INTO run_label (run_id, axis, label, total)
		VALUES (?, ?, ?, ?)
	`

	selectRunsSQL = `SELECT
			r.id,
			r.run_date,
			r.dry_run,
			r.files,
			r.modified,
			r.duration
		FROM run r
		ORDER BY r.run_date DESC
		LIMIT ?
	`

	selectLabelTotalsSQL = `SELECT
			l.label,
			SUM(l.total) as total
		FROM run_label l
		WHERE l.axis = ?
		GROUP BY l.label
		ORDER BY 2 DESC, 1
	`
)

// Run is a stored enrichment run summary.
type Run struct {
	ID       string `json:"id" yaml:"id"`
	Date     string `json:"date" yaml:"date"`
	DryRun   bool   `json:"dry_run" yaml:"dry_run"`
	Files    int    `json:"files" yaml:"files"`
	Modified int    `json:"modified" yaml:"modified"`
	Duration string `json:"duration" yaml:"duration"`
}

// LabelCount is an aggregate label assignment count for one axis.
type LabelCount struct {
	Label string `json:"label" yaml:"label"`
	Total int    `json:"total" yaml:"total"`
}

// SaveRun stores the run summary with its per-axis counters and label
// frequencies.
func SaveRun(db *sql.DB, res *enrich.Result) error {
	if db == nil {
		return errDBNotInitialized
	}
	if res == nil {
		return errors.New("result required")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.Exec(insertRunSQL, res.ID, res.Started, res.DryRun, res.Files, res.Modified, res.Duration); err != nil {
		return errors.Wrap(err, "failed to insert run")
	}

	for axis, sum := range res.Axes {
		if _, err = tx.Exec(insertRunAxisSQL, res.ID, axis, sum.Changed, sum.Unresolved); err != nil {
			return errors.Wrapf(err, "failed to insert run axis: %s", axis)
		}
		for label, total := range sum.Labels {
			if _, err = tx.Exec(insertRunLabelSQL, res.ID, axis, label, total); err != nil {
				return errors.Wrapf(err, "failed to insert run label: %s/%s", axis, label)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit run")
	}
	return nil
}

// GetRuns returns the most recent runs.
func GetRuns(db *sql.DB, limit int) ([]*Run, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit < 1 {
		return nil, errors.Errorf("invalid limit: %d", limit)
	}

	stmt, err := db.Prepare(selectRunsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare run select statement")
	}

	rows, err := stmt.Query(limit)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to execute run select statement")
	}
	defer rows.Close()

	list := make([]*Run, 0)
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.Date, &r.DryRun, &r.Files, &r.Modified, &r.Duration); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		list = append(list, r)
	}

	return list, nil
}

// GetLabelTotals returns how often each label has been assigned on the
// given axis across all stored runs.
func GetLabelTotals(db *sql.DB, axis string) ([]*LabelCount, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if axis == "" {
		return nil, errors.New("axis required")
	}

	stmt, err := db.Prepare(selectLabelTotalsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare label totals statement")
	}

	rows, err := stmt.Query(axis)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to execute label totals statement")
	}
	defer rows.Close()

	list := make([]*LabelCount, 0)
	for rows.Next() {
		c := &LabelCount{}
		if err := rows.Scan(&c.Label, &c.Total); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		list = append(list, c)
	}

	return list, nil
}
