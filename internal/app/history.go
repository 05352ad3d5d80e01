package app

import (
	"errors"

	"tiktokdl/internal/database"
	"tiktokdl/internal/models"
	"tiktokdl/internal/repo"
	"tiktokdl/internal/utils/logging"
)

// History records runs and the videos dispatched during them.
type History interface {
	StartRun(metadataOnly bool, targets int) (models.Run, error)
	FinishRun(run *models.Run) error
	AddDispatched(runID string, videos []models.VideoRecord) error
}

// openHistory opens the history database at path.
//
// History is best effort: an empty path or a database that cannot be opened
// yields a nil store and the run proceeds unrecorded.
func openHistory(path string) (History, func()) {
	if path == "" {
		return nil, func() {}
	}

	d, err := database.InitDB(path)
	if err != nil {
		logging.W("Run history disabled: %v", err)
		return nil, func() {}
	}
	return repo.GetHistoryStore(d.DB), func() {
		if err := d.Close(); err != nil {
			logging.E("Failed to close history database: %v", err)
		}
	}
}

// startRun records the start of a run, returning nil when history is off.
func startRun(h History, metadataOnly bool, targets int) *models.Run {
	if h == nil {
		return nil
	}
	run, err := h.StartRun(metadataOnly, targets)
	if err != nil {
		logging.W("Could not record run: %v", err)
		return nil
	}
	return &run
}

// finishRun stores the counters of a completed run.
func finishRun(h History, run *models.Run, res Result, err error) {
	if h == nil || run == nil {
		return
	}

	run.FailedURLs = len(res.FailedURLs)
	run.Fetched = res.Fetched
	run.Matched = len(res.Videos)
	if res.Dispatched {
		run.Dispatched = len(res.Videos)
	}
	if err != nil {
		run.Error = err.Error()
	}

	if err := h.FinishRun(run); err != nil {
		logging.W("Could not finish run %s: %v", run.ID, err)
	}
}

// openStore opens the history database at path for a read.
func openStore(path string) (*repo.HistoryStore, func(), error) {
	if path == "" {
		return nil, nil, errors.New("no history database configured")
	}

	d, err := database.InitDB(path)
	if err != nil {
		return nil, nil, err
	}
	return repo.GetHistoryStore(d.DB), func() { d.Close() }, nil
}

// ListDispatched returns the videos recorded for runID in the database at path.
func ListDispatched(path, runID string) ([]models.DispatchedVideo, error) {
	hs, closeDB, err := openStore(path)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	return hs.ListDispatched(runID)
}

// ListRuns returns up to limit recorded runs from the database at path, newest first.
func ListRuns(path string, limit int) ([]models.Run, error) {
	hs, closeDB, err := openStore(path)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	return hs.ListRuns(limit)
}
