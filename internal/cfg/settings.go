// Package cfg resolves run settings from flags, the settings file and defaults.
package cfg

import (
	"path/filepath"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/domain/paths"
	"tiktokdl/internal/file"
	"tiktokdl/internal/models"
	"tiktokdl/internal/parsing"
	"tiktokdl/internal/utils/logging"
)

// LoadSettings reads the settings file at configPath and resolves it against o.
func LoadSettings(configPath string, o models.Overrides) (models.Settings, error) {
	logging.I("Loading configuration from %s.", configPath)
	rec, err := file.LoadConfigRecord(configPath)
	if err != nil {
		return models.Settings{}, err
	}
	return ResolveSettings(rec, o)
}

// ResolveSettings merges overrides, the config record and built-in defaults.
//
// Each field is resolved independently: a supplied override wins (even when
// it is zero or false), then the config value, then the default.
func ResolveSettings(c models.ConfigRecord, o models.Overrides) (models.Settings, error) {
	s := models.Settings{
		OutputPath:          pick(o.OutputPath, c.OutputPath, consts.DefaultOutputPath),
		MinLikes:            pickOpt(o.MinLikes, c.MinLikes),
		MinViews:            pickOpt(o.MinViews, c.MinViews),
		ConcurrentDownloads: pick(o.ConcurrentDownloads, c.ConcurrentDownloads, consts.DefaultConcurrentDownloads),
		MinSleepInterval:    pickOpt(o.MinSleepInterval, c.MinSleepInterval),
		MaxSleepInterval:    pickOpt(o.MaxSleepInterval, c.MaxSleepInterval),
		CookiesFromBrowser:  pickOpt(o.CookiesFromBrowser, c.CookiesFromBrowser),
		CookiesFile:         pickOpt(o.CookiesFile, c.CookiesFile),
		HistoryDBPath:       pick(o.HistoryDB, c.HistoryDB, paths.HistoryDBPath),
	}
	if s.OutputPath == "" {
		s.OutputPath = consts.DefaultOutputPath
	}

	// Transcripts
	s.TranscriptsEnabled = pick(o.Transcripts, c.Transcripts, false)
	if s.TranscriptsEnabled {
		lang := pick(o.TranscriptLanguage, c.TranscriptLanguage, consts.DefaultTranscriptLanguage)
		s.TranscriptLanguage = &lang
	}

	// Archive path depends on the resolved output path
	s.DownloadArchivePath = pick(o.DownloadArchive, c.DownloadArchive,
		filepath.Join(s.OutputPath, consts.ArchiveFilename))

	if raw := pickOpt(o.DateAfter, c.DateAfter); raw != nil && *raw != "" {
		t, err := parsing.ParseDate(*raw)
		if err != nil {
			return models.Settings{}, &models.ConfigError{Key: keys.CfgDateAfter, Value: *raw, Err: err}
		}
		s.DateAfter = &t
	}

	if err := validateSettings(s); err != nil {
		return models.Settings{}, err
	}

	logging.D(1, "Resolved settings: %+v", s)
	return s, nil
}

// pick returns the first non-nil of override and config, else def.
func pick[T any](override, config *T, def T) T {
	if override != nil {
		return *override
	}
	if config != nil {
		return *config
	}
	return def
}

// pickOpt is pick for fields without a default.
func pickOpt[T any](override, config *T) *T {
	if override != nil {
		v := *override
		return &v
	}
	if config != nil {
		v := *config
		return &v
	}
	return nil
}
