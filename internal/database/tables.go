package database

import (
	"database/sql"
	"embed"
	"fmt"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

const (
	runsSQL       = "sql/runs.sql"
	dispatchedSQL = "sql/dispatched_videos.sql"
)

// initRunsTable initializes the run history table.
func initRunsTable(tx *sql.Tx) error {
	return executeSQLFile(tx, runsSQL, "runs table")
}

// initDispatchedTable initializes the table of videos handed to yt-dlp.
func initDispatchedTable(tx *sql.Tx) error {
	return executeSQLFile(tx, dispatchedSQL, "dispatched videos table")
}

// executeSQLFile executes the SQL file stored in memory from go:embed.
func executeSQLFile(tx *sql.Tx, filename, tableName string) error {
	data, err := sqlFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read SQL file %s: %w", filename, err)
	}
	if _, err := tx.Exec(string(data)); err != nil {
		return fmt.Errorf("failed to execute SQL for %s: %w", tableName, err)
	}
	return nil
}
