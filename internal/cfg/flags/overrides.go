package cfgflags

import (
	"fmt"

	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/models"

	"github.com/spf13/pflag"
)

// RootFlags holds raw values of the flags accepted by the root command.
type RootFlags struct {
	FromFile        string
	ConfigFile      string
	OutputPath      string
	DownloadArchive string
	HistoryDB       string
	ExportCSV       string
	LogFile         string

	MinLikes  int64
	MinViews  int64
	DateAfter string

	Transcripts        bool
	NoTranscripts      bool
	TranscriptLanguage string

	MetadataOnly        bool
	ConcurrentDownloads int
	MinSleepInterval    int
	MaxSleepInterval    int

	CookiesFromBrowser string
	CookiesFile        string
	CheckCookies       bool

	Verbosity int
}

// Overrides returns the flags the user actually supplied.
//
// A flag left at its default is not an override, so the settings file still
// applies. A flag given explicitly wins even when set to zero or false.
func (rf *RootFlags) Overrides(f *pflag.FlagSet) models.Overrides {
	o := models.Overrides{
		OutputPath:          changed(f, keys.OutputPath, rf.OutputPath),
		MinLikes:            changed(f, keys.MinLikes, rf.MinLikes),
		MinViews:            changed(f, keys.MinViews, rf.MinViews),
		TranscriptLanguage:  changed(f, keys.TranscriptLanguage, rf.TranscriptLanguage),
		ConcurrentDownloads: changed(f, keys.ConcurrentDownloads, rf.ConcurrentDownloads),
		MinSleepInterval:    changed(f, keys.MinSleepInterval, rf.MinSleepInterval),
		MaxSleepInterval:    changed(f, keys.MaxSleepInterval, rf.MaxSleepInterval),
		CookiesFromBrowser:  changed(f, keys.CookiesFromBrowser, rf.CookiesFromBrowser),
		CookiesFile:         changed(f, keys.CookiesFile, rf.CookiesFile),
		DownloadArchive:     changed(f, keys.DownloadArchive, rf.DownloadArchive),
		DateAfter:           changed(f, keys.DateAfter, rf.DateAfter),
		HistoryDB:           changed(f, keys.HistoryDB, rf.HistoryDB),
	}

	switch {
	case f.Changed(keys.Transcripts):
		o.Transcripts = &rf.Transcripts
	case f.Changed(keys.NoTranscripts):
		enabled := !rf.NoTranscripts
		o.Transcripts = &enabled
	}
	return o
}

// Validate rejects flag combinations that contradict each other.
func (rf *RootFlags) Validate(f *pflag.FlagSet) error {
	if f.Changed(keys.Transcripts) && f.Changed(keys.NoTranscripts) {
		return fmt.Errorf("%w: --%s and --%s cannot be used together", models.ErrUsage, keys.Transcripts, keys.NoTranscripts)
	}
	return nil
}

// changed returns a pointer to val if the named flag was set on the command line.
func changed[T any](f *pflag.FlagSet, name string, val T) *T {
	if f.Lookup(name) == nil || !f.Changed(name) {
		return nil
	}
	return &val
}
