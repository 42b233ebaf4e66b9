// journal/sqlite.go
package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, log_path, market_rows, transaction_rows, account_rows,
		 current_pnl, max_pnl, min_pnl, pnl_range, total_cycles, runtime_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.LogPath, r.MarketRows, r.TransactionRows, r.AccountRows,
		r.CurrentPnL, r.MaxPnL, r.MinPnL, r.PnLRange, r.TotalCycles, r.RuntimeHours,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
