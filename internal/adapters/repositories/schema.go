package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Initialize the prediction log schema for the given dialect.
func InitSchema(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var idColumn, tsType, floatType string
	switch dialect {
	case DialectSQLite:
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
		tsType = "TIMESTAMP"
		floatType = "REAL"
	case DialectPostgres:
		idColumn = "id BIGSERIAL PRIMARY KEY"
		tsType = "TIMESTAMPTZ"
		floatType = "DOUBLE PRECISION"
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPredictionsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS predictions (
		%[1]s,
		request_id TEXT NOT NULL,
		journey_date TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		total_stops INTEGER NOT NULL,
		airline TEXT NOT NULL,
		additional_info TEXT NOT NULL,
		duration_hours %[3]s NOT NULL,
		price %[3]s NOT NULL,
		model TEXT NOT NULL,
		created_at %[2]s NOT NULL
	);
	`, idColumn, tsType, floatType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at
	ON predictions(created_at);
	`

	statements := []string{
		createPredictionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
