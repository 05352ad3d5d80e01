// Package app contains core application functionality.
package app

import (
	"context"
	"errors"

	"tiktokdl/internal/cfg"
	"tiktokdl/internal/file"
	"tiktokdl/internal/metadata"
	"tiktokdl/internal/models"
	"tiktokdl/internal/parsing"
	"tiktokdl/internal/utils/browser"
	"tiktokdl/internal/utils/logging"
)

// Fetcher retrieves video metadata for one target URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string, auth models.AuthOptions) ([]models.VideoRecord, error)
}

// Downloader hands filtered records to the download engine.
type Downloader interface {
	Dispatch(ctx context.Context, records []models.VideoRecord, s models.Settings) error
}

// Request is one invocation of the pipeline.
type Request struct {
	URL          string
	FromFile     string
	ConfigPath   string
	Overrides    models.Overrides
	MetadataOnly bool
	ExportCSV    string
	CheckCookies bool
}

// Deps are the collaborators the pipeline drives.
//
// History is optional. When nil, Run opens the history database named by the
// resolved settings, if any.
type Deps struct {
	Fetcher    Fetcher
	Downloader Downloader
	History    History
}

// Result is the outcome of a run.
type Result struct {
	Settings   models.Settings
	Videos     []models.VideoRecord
	Fetched    int
	FailedURLs []string
	Dispatched bool
}

// Run resolves settings, collects targets, fetches and filters metadata, then
// downloads the survivors unless the request is metadata-only.
//
// A URL whose metadata cannot be fetched is logged and skipped.
func Run(ctx context.Context, req Request, deps Deps) (res Result, err error) {
	s, err := cfg.LoadSettings(req.ConfigPath, req.Overrides)
	if err != nil {
		return res, err
	}
	res.Settings = s

	urls, err := parsing.CollectURLs(req.URL, req.FromFile)
	if err != nil {
		return res, err
	}
	warnForeignURLs(urls)

	if req.CheckCookies {
		if _, err := browser.CheckCookies(s.Auth()); err != nil {
			return res, err
		}
	}

	history, closeHistory := deps.History, func() {}
	if history == nil {
		history, closeHistory = openHistory(s.HistoryDBPath)
	}
	defer closeHistory()

	run := startRun(history, req.MetadataOnly, len(urls))
	defer func() {
		finishRun(history, run, res, err)
	}()

	// Fetch
	var videos []models.VideoRecord
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		logging.I("Fetching metadata for %s", u)
		records, fetchErr := deps.Fetcher.Fetch(ctx, u, s.Auth())
		if fetchErr != nil {
			if errors.Is(fetchErr, context.Canceled) {
				return res, fetchErr
			}
			logging.E("%v", fetchErr)
			res.FailedURLs = append(res.FailedURLs, u)
			continue
		}
		logging.D(1, "Got %d video(s) from %s", len(records), u)
		videos = append(videos, records...)
	}
	res.Fetched = len(videos)

	// Filter
	res.Videos = metadata.ApplyFilters(videos, s.Criteria())
	logging.I("Found %d videos that match the criteria.", len(res.Videos))

	if req.ExportCSV != "" {
		if err := file.WriteVideosCSV(res.Videos, req.ExportCSV); err != nil {
			return res, err
		}
		logging.S("Exported %d video(s) to %q", len(res.Videos), req.ExportCSV)
	}

	if req.MetadataOnly {
		return res, nil
	}

	// Download
	if err := deps.Downloader.Dispatch(ctx, res.Videos, s); err != nil {
		return res, err
	}
	res.Dispatched = len(res.Videos) > 0
	if res.Dispatched && run != nil {
		if err := history.AddDispatched(run.ID, res.Videos); err != nil {
			logging.W("Could not record dispatched videos: %v", err)
		}
	}
	return res, nil
}

// warnForeignURLs logs targets that do not point at TikTok.
func warnForeignURLs(urls []string) {
	for _, u := range urls {
		kind, onTikTok := parsing.ClassifyURL(u)
		if !onTikTok {
			logging.W("URL %q does not look like a TikTok URL, passing it to yt-dlp anyway", u)
			continue
		}
		logging.D(1, "URL %q classified as %s", u, kind)
	}
}
