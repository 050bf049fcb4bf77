// Package store provides the SQLite-backed workbook that holds the weekly
// savings table between runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/savr/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register sqlite driver
)

const metaActiveWeek = "active_week"

var (
	ErrWeekNotFound = errors.New("week not found")
	ErrRowNotFound  = errors.New("row not found")
	ErrNoActiveWeek = errors.New("no active week")
	ErrAmbiguousID  = errors.New("ambiguous week id")
)

// Workbook is the weekly savings table backed by SQLite.
type Workbook struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the workbook database at the given path.
func Open(dbPath string, log *zap.Logger) (*Workbook, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating workbook dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening workbook db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.Debug("workbook opened", zap.String("path", dbPath))
	return &Workbook{db: db, log: log}, nil
}

// Close closes the workbook database.
func (w *Workbook) Close() error {
	return w.db.Close()
}

// LoadWeeks reads every week in position order with its rows in day order.
func (w *Workbook) LoadWeeks(ctx context.Context) ([]model.Week, error) {
	rows, err := w.db.QueryContext(ctx,
		"SELECT week_id, label, created_at FROM weeks ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var weeks []model.Week
	index := make(map[string]int)
	for rows.Next() {
		var wk model.Week
		var created string
		if err := rows.Scan(&wk.ID, &wk.Label, &created); err != nil {
			return nil, err
		}
		wk.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("week %s created_at: %w", wk.ID, err)
		}
		index[wk.ID] = len(weeks)
		weeks = append(weeks, wk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load rows
	rowRows, err := w.db.QueryContext(ctx,
		"SELECT week_id, day, status, suggested, goal FROM week_rows ORDER BY week_id, idx")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rowRows.Close() }()

	for rowRows.Next() {
		var weekID, status string
		var r model.Row
		if err := rowRows.Scan(&weekID, &r.Day, &status, &r.Suggested, &r.Goal); err != nil {
			return nil, err
		}
		r.Status = model.RowStatus(status)
		if i, ok := index[weekID]; ok {
			weeks[i].Rows = append(weeks[i].Rows, r)
		}
	}
	return weeks, rowRows.Err()
}

// SaveRows writes status, suggested and goal for every row of weeks in a
// single transaction. Weeks or rows that are not in the workbook are ignored.
func (w *Workbook) SaveRows(ctx context.Context, weeks []model.Week) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"UPDATE week_rows SET status = ?, suggested = ?, goal = ? WHERE week_id = ? AND idx = ?")
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	for _, wk := range weeks {
		for i, r := range wk.Rows {
			if _, err := stmt.ExecContext(ctx, string(r.Status), r.Suggested, r.Goal, wk.ID, i); err != nil {
				return fmt.Errorf("saving %s row %d: %w", wk.ID, i, err)
			}
			n++
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	w.log.Debug("rows saved", zap.Int("weeks", len(weeks)), zap.Int("rows", n))
	return nil
}

// AddWeek appends a new week with one pending row per day, each suggesting
// the given amount, and makes it the active week. An empty label becomes
// "Week N".
func (w *Workbook) AddWeek(ctx context.Context, label string, days []string, suggested decimal.Decimal) (model.Week, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Week{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM weeks").Scan(&position); err != nil {
		return model.Week{}, err
	}
	position++

	if label == "" {
		label = fmt.Sprintf("Week %d", position)
	}

	wk := model.Week{
		ID:        uuid.NewString(),
		Label:     label,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Rows:      make([]model.Row, 0, len(days)),
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO weeks (week_id, label, position, created_at) VALUES (?, ?, ?, ?)",
		wk.ID, wk.Label, position, wk.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Week{}, fmt.Errorf("inserting week: %w", err)
	}

	for i, day := range days {
		r := model.Row{Day: day, Status: model.StatusPending, Suggested: suggested}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO week_rows (week_id, idx, day, status, suggested, goal) VALUES (?, ?, ?, ?, ?, ?)",
			wk.ID, i, r.Day, string(r.Status), r.Suggested, r.Goal)
		if err != nil {
			return model.Week{}, fmt.Errorf("inserting row %d: %w", i, err)
		}
		wk.Rows = append(wk.Rows, r)
	}

	if err := setMeta(ctx, tx, metaActiveWeek, wk.ID); err != nil {
		return model.Week{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Week{}, err
	}
	w.log.Debug("week added", zap.String("week", wk.ID), zap.Int("rows", len(wk.Rows)))
	return wk, nil
}

// ActiveWeekID returns the active week, or ErrNoActiveWeek if none is set.
func (w *Workbook) ActiveWeekID(ctx context.Context) (string, error) {
	var id string
	err := w.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaActiveWeek).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && id == "") {
		return "", ErrNoActiveWeek
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// SetActiveWeek marks id as the active week.
func (w *Workbook) SetActiveWeek(ctx context.Context, id string) error {
	if err := w.requireWeek(ctx, id); err != nil {
		return err
	}
	return setMeta(ctx, w.db, metaActiveWeek, id)
}

// SetRowStatus changes the status of the row for day in week id.
func (w *Workbook) SetRowStatus(ctx context.Context, id, day string, status model.RowStatus) error {
	if err := w.requireWeek(ctx, id); err != nil {
		return err
	}

	res, err := w.db.ExecContext(ctx,
		"UPDATE week_rows SET status = ? WHERE week_id = ? AND lower(day) = lower(?)",
		string(status), id, day)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s in week %s: %w", day, id, ErrRowNotFound)
	}
	return nil
}

// ResolveWeekID expands a full or unique-prefix week ID.
func (w *Workbook) ResolveWeekID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrWeekNotFound
	}

	rows, err := w.db.QueryContext(ctx,
		"SELECT week_id FROM weeks WHERE substr(week_id, 1, ?) = ?", len(prefix), prefix)
	if err != nil {
		return "", err
	}
	defer func() { _ = rows.Close() }()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		if id == prefix {
			return id, nil
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%q: %w", prefix, ErrWeekNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d weeks: %w", prefix, len(matches), ErrAmbiguousID)
	}
}

func (w *Workbook) requireWeek(ctx context.Context, id string) error {
	var one int
	err := w.db.QueryRowContext(ctx, "SELECT 1 FROM weeks WHERE week_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%q: %w", id, ErrWeekNotFound)
	}
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setMeta(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx, "INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}
