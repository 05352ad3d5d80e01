package execute

import (
	"context"
	"fmt"
	"io"
	"os"

	"tiktokdl/internal/command/builder"
	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
)

// Dispatcher hands filtered records to yt-dlp for download.
type Dispatcher struct {
	Runner Runner
	Stdout io.Writer
	Stderr io.Writer
}

// NewDispatcher returns a dispatcher streaming yt-dlp output to the terminal.
func NewDispatcher(r Runner) *Dispatcher {
	return &Dispatcher{
		Runner: r,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Dispatch downloads every record in a single yt-dlp invocation.
//
// Nothing happens for an empty list. Skipping previously archived IDs and
// per-item failures are left to yt-dlp.
func (d *Dispatcher) Dispatch(ctx context.Context, records []models.VideoRecord, s models.Settings) error {
	if len(records) == 0 {
		logging.I("No videos to download.")
		return nil
	}

	if err := os.MkdirAll(s.OutputPath, consts.PermsOutputDir); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", s.OutputPath, err)
	}

	args := builder.NewVideoDLCommandBuilder(s).DownloadArgs(records)

	logging.I("Downloading %d video(s) to %q...", len(records), s.OutputPath)
	if err := d.Runner.Run(ctx, args, d.Stdout, d.Stderr); err != nil {
		return &models.DispatchError{Count: len(records), Err: err}
	}

	logging.S("Download complete.")
	return nil
}
