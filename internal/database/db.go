// Package database sets up/opens the run history database.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/errconsts"
	"tiktokdl/internal/utils/logging"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
)

type Database struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the history database at path.
func InitDB(path string) (d *Database, err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, consts.PermsHomeProgDir); err != nil {
			return nil, fmt.Errorf("failed to create database directory %q: %w", dir, err)
		}
	}

	d = new(Database)
	// Foreign keys are enabled per connection through the DSN
	d.DB, err = sql.Open(dbDriver, path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	if err = d.initTables(); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	logging.D(1, "Opened history database at %q", path)
	return d, nil
}

// Close closes the underlying database handle.
func (d *Database) Close() error {
	return d.DB.Close()
}

// initTables initializes the SQL tables.
func (d *Database) initTables() (err error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf(errconsts.TxBeginFail, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logging.E("transaction rollback failed: %v", rollbackErr)
			}
		}
	}()

	if err = initRunsTable(tx); err != nil {
		return err
	}

	if err = initDispatchedTable(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf(errconsts.TxCommitFail, err)
	}
	return nil
}
