// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	log_path TEXT NOT NULL,
	market_rows INTEGER NOT NULL,
	transaction_rows INTEGER NOT NULL,
	account_rows INTEGER NOT NULL,
	current_pnl REAL NOT NULL,
	max_pnl REAL NOT NULL,
	min_pnl REAL NOT NULL,
	pnl_range REAL NOT NULL,
	total_cycles INTEGER NOT NULL,
	runtime_hours REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created);
`
