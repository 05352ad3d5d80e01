// Package keys holds various keys for software operations, such as terminal input keys and config file keys.
package keys

// Targets.
const (
	FromFile string = "from-file"
)

// Files and directories.
const (
	ConfigFile      string = "config"
	OutputPath      string = "output-path"
	DownloadArchive string = "download-archive"
	HistoryDB       string = "history-db"
	ExportCSV       string = "export-csv"
	LogFile         string = "log-file"
)

// Filters.
const (
	MinLikes  string = "min-likes"
	MinViews  string = "min-views"
	DateAfter string = "date-after"
)

// Transcripts.
const (
	Transcripts        string = "transcripts"
	NoTranscripts      string = "no-transcripts"
	TranscriptLanguage string = "transcript-language"
)

// Download behaviour.
const (
	MetadataOnly        string = "metadata-only"
	ConcurrentDownloads string = "concurrent-downloads"
	MinSleepInterval    string = "min-sleep-interval"
	MaxSleepInterval    string = "max-sleep-interval"
)

// Auth.
const (
	CookiesFromBrowser string = "cookies-from-browser"
	CookiesFile        string = "cookies-file"
	CheckCookies       string = "check-cookies"
)

// Logging.
const (
	Verbose string = "verbose"
)

// History.
const (
	HistoryLimit string = "limit"
	HistoryRun   string = "run"
)
