package execute

import (
	"bytes"
	"context"
	"strings"

	"tiktokdl/internal/command/builder"
	"tiktokdl/internal/metadata"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
)

// MetaFetcher requests metadata for one URL at a time.
type MetaFetcher struct {
	Runner Runner
}

// NewMetaFetcher returns a fetcher using the given runner.
func NewMetaFetcher(r Runner) *MetaFetcher {
	return &MetaFetcher{Runner: r}
}

// Fetch returns the records reported for url.
//
// Malformed entries are dropped. A failed yt-dlp call or unreadable output
// returns a *models.FetchError.
func (mf *MetaFetcher) Fetch(ctx context.Context, url string, auth models.AuthOptions) ([]models.VideoRecord, error) {
	var stdout, stderr bytes.Buffer

	args := builder.MetaFetchArgs(url, auth)
	if err := mf.Runner.Run(ctx, args, &stdout, &stderr); err != nil {
		return nil, &models.FetchError{URL: url, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	records, err := metadata.ParseVideoRecords(stdout.Bytes())
	if err != nil {
		return nil, &models.FetchError{URL: url, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	logging.D(1, "Got %d video(s) from %q", len(records), url)
	return records, nil
}
