package builder

import (
	"path/filepath"
	"strconv"

	command "tiktokdl/internal/domain/command"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
)

// VideoDLCommandBuilder builds download arguments from resolved settings.
type VideoDLCommandBuilder struct {
	Settings models.Settings
}

// NewVideoDLCommandBuilder returns a builder for the given settings.
func NewVideoDLCommandBuilder(s models.Settings) *VideoDLCommandBuilder {
	return &VideoDLCommandBuilder{
		Settings: s,
	}
}

// OutputTemplate returns the yt-dlp output template rooted at the output path.
func (vb *VideoDLCommandBuilder) OutputTemplate() string {
	return filepath.Join(vb.Settings.OutputPath, command.OutputTemplate)
}

// DownloadArgs builds the argument list that downloads every record, in order.
//
// Returns nil when there is nothing to download.
func (vb *VideoDLCommandBuilder) DownloadArgs(records []models.VideoRecord) []string {
	if len(records) == 0 {
		return nil
	}
	s := vb.Settings

	args := []string{command.Output, vb.OutputTemplate(), command.WriteThumbnail}

	if s.TranscriptsEnabled && s.TranscriptLanguage != nil {
		args = append(args, command.WriteSubs, command.WriteAutoSubs, command.SubLangs, *s.TranscriptLanguage)
	}

	if s.ConcurrentDownloads > 1 {
		args = append(args, command.ConcurrentFragments, strconv.Itoa(s.ConcurrentDownloads))
	}

	if s.MinSleepInterval != nil && *s.MinSleepInterval > 0 {
		args = append(args, command.SleepInterval, strconv.Itoa(*s.MinSleepInterval))
	}
	if s.MaxSleepInterval != nil && *s.MaxSleepInterval > 0 {
		args = append(args, command.MaxSleepInterval, strconv.Itoa(*s.MaxSleepInterval))
	}

	args = append(args, authArgs(s.Auth())...)

	if s.DownloadArchivePath != "" {
		args = append(args, command.DownloadArchive, s.DownloadArchivePath)
	}

	for _, r := range records {
		args = append(args, r.WebpageURL)
	}

	logging.D(1, "Built download argument list: %v", args)
	return args
}
