// Package repo is used for performing database repository operations.
package repo

import (
	"database/sql"
	"fmt"
	"time"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/errconsts"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// HistoryStore holds a pointer to the sql.DB.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a history store instance with injected database.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// StartRun inserts a new run row and returns it.
func (hs *HistoryStore) StartRun(metadataOnly bool, targets int) (models.Run, error) {
	run := models.Run{
		ID:           uuid.NewString(),
		StartedAt:    time.Now().UTC(),
		MetadataOnly: metadataOnly,
		Targets:      targets,
	}

	query := squirrel.
		Insert(consts.DBRuns).
		Columns(
			consts.QRunID,
			consts.QRunStartedAt,
			consts.QRunMetadataOnly,
			consts.QRunTargets,
		).
		Values(
			run.ID,
			run.StartedAt,
			run.MetadataOnly,
			run.Targets,
		).
		RunWith(hs.DB)

	if _, err := query.Exec(); err != nil {
		return models.Run{}, fmt.Errorf("failed to insert run: %w", err)
	}
	logging.D(1, "Started run %s", run.ID)
	return run, nil
}

// FinishRun stores the final counters of a run.
func (hs *HistoryStore) FinishRun(run *models.Run) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	query := squirrel.
		Update(consts.DBRuns).
		Set(consts.QRunFinishedAt, run.FinishedAt).
		Set(consts.QRunFailedURLs, run.FailedURLs).
		Set(consts.QRunFetched, run.Fetched).
		Set(consts.QRunMatched, run.Matched).
		Set(consts.QRunDispatched, run.Dispatched).
		Set(consts.QRunError, run.Error).
		Where(squirrel.Eq{consts.QRunID: run.ID}).
		RunWith(hs.DB)

	res, err := query.Exec()
	if err != nil {
		return fmt.Errorf("failed to update run %s: %w", run.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s not found", run.ID)
	}
	return nil
}

// AddDispatched records the videos handed to the downloader during a run.
func (hs *HistoryStore) AddDispatched(runID string, videos []models.VideoRecord) (err error) {
	if len(videos) == 0 {
		return nil
	}

	tx, err := hs.DB.Begin()
	if err != nil {
		return fmt.Errorf(errconsts.TxBeginFail, err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E("Panic rollback failed for run %s: %v", runID, rbErr)
			}
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E("Error rolling back dispatched videos for run %s (original error: %v): %v", runID, err, rbErr)
			}
		}
	}()

	for _, v := range videos {
		query := squirrel.
			Insert(consts.DBDispatched).
			Options("OR IGNORE").
			Columns(
				consts.QDispRunID,
				consts.QDispVideoID,
				consts.QDispWebpageURL,
			).
			Values(runID, v.ID, v.WebpageURL).
			RunWith(tx)

		if _, err = query.Exec(); err != nil {
			return fmt.Errorf("failed to record video %q for run %s: %w", v.ID, runID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf(errconsts.TxCommitFail, err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all runs.
func (hs *HistoryStore) ListRuns(limit int) ([]models.Run, error) {
	query := squirrel.
		Select(
			consts.QRunID,
			consts.QRunStartedAt,
			consts.QRunFinishedAt,
			consts.QRunMetadataOnly,
			consts.QRunTargets,
			consts.QRunFailedURLs,
			consts.QRunFetched,
			consts.QRunMatched,
			consts.QRunDispatched,
			consts.QRunError,
		).
		From(consts.DBRuns).
		OrderBy(consts.QRunStartedAt + " DESC").
		RunWith(hs.DB)

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var (
			r        models.Run
			finished sql.NullTime
		)
		if err := rows.Scan(
			&r.ID,
			&r.StartedAt,
			&finished,
			&r.MetadataOnly,
			&r.Targets,
			&r.FailedURLs,
			&r.Fetched,
			&r.Matched,
			&r.Dispatched,
			&r.Error,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListDispatched returns the videos recorded for a run.
func (hs *HistoryStore) ListDispatched(runID string) ([]models.DispatchedVideo, error) {
	query := squirrel.
		Select(consts.QDispRunID, consts.QDispVideoID, consts.QDispWebpageURL).
		From(consts.DBDispatched).
		Where(squirrel.Eq{consts.QDispRunID: runID}).
		OrderBy("rowid").
		RunWith(hs.DB)

	rows, err := query.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatched videos for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []models.DispatchedVideo
	for rows.Next() {
		var d models.DispatchedVideo
		if err := rows.Scan(&d.RunID, &d.VideoID, &d.WebpageURL); err != nil {
			return nil, fmt.Errorf("failed to scan dispatched video: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
