// journal/query.go
package journal

import (
	"database/sql"
	"fmt"
)

const runColumns = `run_id, created, log_path, market_rows, transaction_rows, account_rows,
	current_pnl, max_pnl, min_pnl, pnl_range, total_cycles, runtime_hours`

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs
		WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns the most recent runs, newest first. ULIDs sort by
// creation time, so run_id order doubles as time order.
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var rec RunRecord
	err := s.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.LogPath,
		&rec.MarketRows,
		&rec.TransactionRows,
		&rec.AccountRows,
		&rec.CurrentPnL,
		&rec.MaxPnL,
		&rec.MinPnL,
		&rec.PnLRange,
		&rec.TotalCycles,
		&rec.RuntimeHours,
	)
	return rec, err
}
