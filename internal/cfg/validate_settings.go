package cfg

import (
	"errors"
	"strconv"

	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/models"
)

// validateSettings rejects resolved values yt-dlp cannot act on.
func validateSettings(s models.Settings) error {
	if s.ConcurrentDownloads < 1 {
		return invalid(keys.CfgConcurrentDownloads, strconv.Itoa(s.ConcurrentDownloads), "must be at least 1")
	}
	if s.MinLikes != nil && *s.MinLikes < 0 {
		return invalid(keys.CfgMinLikes, strconv.FormatInt(*s.MinLikes, 10), "must not be negative")
	}
	if s.MinViews != nil && *s.MinViews < 0 {
		return invalid(keys.CfgMinViews, strconv.FormatInt(*s.MinViews, 10), "must not be negative")
	}
	if s.MinSleepInterval != nil && *s.MinSleepInterval < 0 {
		return invalid(keys.CfgMinSleepInterval, strconv.Itoa(*s.MinSleepInterval), "must not be negative")
	}
	if s.MaxSleepInterval != nil {
		maxSleep := *s.MaxSleepInterval
		switch {
		case maxSleep < 0:
			return invalid(keys.CfgMaxSleepInterval, strconv.Itoa(maxSleep), "must not be negative")
		case maxSleep > 0 && (s.MinSleepInterval == nil || *s.MinSleepInterval == 0):
			return invalid(keys.CfgMaxSleepInterval, strconv.Itoa(maxSleep), "requires min_sleep_interval")
		case maxSleep > 0 && maxSleep < *s.MinSleepInterval:
			return invalid(keys.CfgMaxSleepInterval, strconv.Itoa(maxSleep), "must not be below min_sleep_interval")
		}
	}
	if s.TranscriptsEnabled && (s.TranscriptLanguage == nil || *s.TranscriptLanguage == "") {
		return invalid(keys.CfgTranscriptLanguage, "", "must be set when transcripts are enabled")
	}
	return nil
}

func invalid(key, val, reason string) error {
	return &models.ConfigError{Key: key, Value: val, Err: errors.New(reason)}
}
