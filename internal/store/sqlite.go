package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/techtide/orchestrator/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			agent_id TEXT NOT NULL,
			status TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT,
			error TEXT,
			started_at DATETIME,
			finished_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_tenant ON runs(tenant_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS run_events (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			tenant_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			payload TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_events_run ON run_events(run_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateRun persists a new run.
func (s *SQLiteStore) CreateRun(ctx context.Context, run *domain.Run) error {
	input, err := json.Marshal(run.Input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, tenant_id, agent_id, status, input, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.TenantID, run.AgentID, string(run.Status), string(input),
		run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

const runColumns = `id, tenant_id, agent_id, status, input, output, error, started_at, finished_at, created_at, updated_at`

// GetRun retrieves a run by ID. Returns (nil, nil) when the run does not exist.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns retrieves the most recent runs for a tenant.
func (s *SQLiteStore) ListRuns(ctx context.Context, tenantID string, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE tenant_id = ? ORDER BY created_at DESC LIMIT ?`,
		tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// UpdateRunStatus applies a status change to an existing run and returns the
// updated record. Fails with RunNotFoundError when the run id is unknown.
func (s *SQLiteStore) UpdateRunStatus(ctx context.Context, runID string, update StatusUpdate) (*domain.Run, error) {
	sets := []string{"status = ?", "updated_at = ?"}
	args := []any{string(update.Status), time.Now().UTC()}

	if update.Output != nil {
		output, err := json.Marshal(update.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		sets = append(sets, "output = ?")
		args = append(args, string(output))
	}
	if update.Error != "" {
		sets = append(sets, "error = ?")
		args = append(args, update.Error)
	}
	if update.StartedAt != nil {
		sets = append(sets, "started_at = ?")
		args = append(args, *update.StartedAt)
	}
	if update.FinishedAt != nil {
		sets = append(sets, "finished_at = ?")
		args = append(args, *update.FinishedAt)
	}
	args = append(args, runID)

	where := "id = ?"
	if len(update.AllowedFrom) > 0 {
		where += " AND status IN (?" + strings.Repeat(", ?", len(update.AllowedFrom)-1) + ")"
		for _, from := range update.AllowedFrom {
			args = append(args, string(from))
		}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET `+strings.Join(sets, ", ")+` WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		current, err := s.GetRun(ctx, runID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, &domain.RunNotFoundError{RunID: runID}
		}
		return nil, &domain.InvalidTransitionError{From: current.Status, To: update.Status}
	}
	return s.GetRun(ctx, runID)
}

// AppendEvent records an event in the run's audit log.
func (s *SQLiteStore) AppendEvent(ctx context.Context, event *domain.RunEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_events (id, run_id, tenant_id, event_type, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.RunID, event.TenantID, event.EventType, string(event.Payload),
		event.CreatedAt)
	return err
}

// ListEvents retrieves a run's events in insertion order.
func (s *SQLiteStore) ListEvents(ctx context.Context, runID string) ([]domain.RunEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, tenant_id, event_type, payload, created_at
		 FROM run_events WHERE run_id = ? ORDER BY created_at ASC, rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.RunEvent
	for rows.Next() {
		var event domain.RunEvent
		var payload sql.NullString
		if err := rows.Scan(&event.ID, &event.RunID, &event.TenantID,
			&event.EventType, &payload, &event.CreatedAt); err != nil {
			return nil, err
		}
		if payload.Valid {
			event.Payload = json.RawMessage(payload.String)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var status, input string
	var output, errMsg sql.NullString
	var startedAt, finishedAt sql.NullTime

	err := row.Scan(&run.ID, &run.TenantID, &run.AgentID, &status, &input,
		&output, &errMsg, &startedAt, &finishedAt, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}

	run.Status = domain.RunStatus(status)
	if input != "" {
		if err := json.Unmarshal([]byte(input), &run.Input); err != nil {
			return nil, fmt.Errorf("failed to unmarshal input: %w", err)
		}
	}
	if output.Valid && output.String != "" {
		if err := json.Unmarshal([]byte(output.String), &run.Output); err != nil {
			return nil, fmt.Errorf("failed to unmarshal output: %w", err)
		}
	}
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	if startedAt.Valid {
		t := startedAt.Time
		run.StartedAt = &t
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}
	return &run, nil
}
