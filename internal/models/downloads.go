package models

import "time"

// Run is one recorded invocation, stored in the history database.
//
// Only counts and identifiers are kept. Video metadata is never persisted.
type Run struct {
	ID           string    `db:"id"`
	StartedAt    time.Time `db:"started_at"`
	FinishedAt   time.Time `db:"finished_at"`
	MetadataOnly bool      `db:"metadata_only"`
	Targets      int       `db:"targets"`
	FailedURLs   int       `db:"failed_urls"`
	Fetched      int       `db:"fetched"`
	Matched      int       `db:"matched"`
	Dispatched   int       `db:"dispatched"`
	Error        string    `db:"error"`
}

// DispatchedVideo is a video handed to yt-dlp during a run.
type DispatchedVideo struct {
	RunID      string `db:"run_id"`
	VideoID    string `db:"video_id"`
	WebpageURL string `db:"webpage_url"`
}
