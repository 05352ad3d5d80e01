package models

import "time"

// ConfigRecord holds the raw contents of the settings file.
//
// Every field is optional, defaults are applied by the resolver only.
type ConfigRecord struct {
	OutputPath          *string
	MinLikes            *int64
	MinViews            *int64
	Transcripts         *bool
	TranscriptLanguage  *string
	ConcurrentDownloads *int
	MinSleepInterval    *int
	MaxSleepInterval    *int
	CookiesFromBrowser  *string
	CookiesFile         *string
	DownloadArchive     *string
	DateAfter           *string
	HistoryDB           *string
}

// Overrides are explicit call-time values (usually command-line flags).
//
// A nil pointer means "not supplied". A pointer to a zero value is a
// supplied value and takes precedence over the config file.
type Overrides struct {
	OutputPath          *string
	MinLikes            *int64
	MinViews            *int64
	Transcripts         *bool
	TranscriptLanguage  *string
	ConcurrentDownloads *int
	MinSleepInterval    *int
	MaxSleepInterval    *int
	CookiesFromBrowser  *string
	CookiesFile         *string
	DownloadArchive     *string
	DateAfter           *string
	HistoryDB           *string
}

// Settings is the resolved configuration for a single run.
type Settings struct {
	OutputPath          string
	MinLikes            *int64
	MinViews            *int64
	TranscriptsEnabled  bool
	TranscriptLanguage  *string
	ConcurrentDownloads int
	MinSleepInterval    *int
	MaxSleepInterval    *int
	CookiesFromBrowser  *string
	CookiesFile         *string
	DownloadArchivePath string
	DateAfter           *time.Time
	HistoryDBPath       string
}

// Criteria returns the filter thresholds carried by the settings.
func (s Settings) Criteria() FilterCriteria {
	return FilterCriteria{
		MinLikes:      s.MinLikes,
		MinViews:      s.MinViews,
		UploadedAfter: s.DateAfter,
	}
}

// Auth returns the cookie options carried by the settings.
func (s Settings) Auth() AuthOptions {
	return AuthOptions{
		CookiesFromBrowser: s.CookiesFromBrowser,
		CookiesFile:        s.CookiesFile,
	}
}
