package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			disks INTEGER NOT NULL,
			start_ts TEXT NOT NULL,
			end_ts TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			perfect INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS runs_disks ON runs(disks);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) StartRun(ctx context.Context, run Run) (int64, error) {
	if run.Disks < 1 {
		return 0, fmt.Errorf("start run: invalid disk count %d", run.Disks)
	}
	startTS := run.StartTS
	if startTS.IsZero() {
		startTS = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(session_id, disks, start_ts) VALUES(?,?,?)`,
		strings.TrimSpace(run.SessionID),
		run.Disks,
		startTS.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) FinishRun(ctx context.Context, runID int64, out Outcome) error {
	endTS := out.EndTS
	if endTS.IsZero() {
		endTS = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET end_ts = ?, moves = ?, resets = ?, solved = ?, perfect = ? WHERE id = ?`,
		endTS.UTC().Format(timeLayout),
		int64(out.Moves),
		out.Resets,
		ifThen(out.Solved, 1, 0),
		ifThen(out.Perfect, 1, 0),
		runID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("finish run: run %d not found", runID)
	}
	return nil
}

func (s *SQLiteStore) Summary(ctx context.Context) ([]DiskSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			disks,
			COUNT(*),
			COALESCE(SUM(solved), 0),
			COALESCE(SUM(perfect), 0),
			COALESCE(MIN(CASE WHEN solved = 1 THEN moves END), 0),
			COALESCE(MAX(start_ts), '')
		FROM runs
		GROUP BY disks
		ORDER BY disks
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DiskSummary, 0)
	for rows.Next() {
		var (
			sum    DiskSummary
			best   int64
			lastTS string
		)
		if err := rows.Scan(&sum.Disks, &sum.Runs, &sum.Solved, &sum.Perfect, &best, &lastTS); err != nil {
			return nil, err
		}
		sum.BestMoves = uint64(best)
		if t, err := time.Parse(timeLayout, lastTS); err == nil {
			sum.LastTS = t
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ifThen(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
