package consts

// Tables
const (
	DBRuns       = "runs"
	DBDispatched = "dispatched_videos"
)

// Runs
const (
	QRunID           = "id"
	QRunStartedAt    = "started_at"
	QRunFinishedAt   = "finished_at"
	QRunMetadataOnly = "metadata_only"
	QRunTargets      = "targets"
	QRunFailedURLs   = "failed_urls"
	QRunFetched      = "fetched"
	QRunMatched      = "matched"
	QRunDispatched   = "dispatched"
	QRunError        = "error"
)

// Dispatched videos
const (
	QDispRunID      = "run_id"
	QDispVideoID    = "video_id"
	QDispWebpageURL = "webpage_url"
)
