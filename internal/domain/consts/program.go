package consts

// Program
const (
	ProgramName     = "tiktokdl"
	ProgramDir      = ".tiktokdl"
	HistoryDBFile   = "history.db"
	ConfigSection   = "defaults"
	DefaultConfig   = "config.ini"
	ArchiveFilename = ".tiktok-downloader-archive.txt"
)

// Setting defaults
const (
	DefaultOutputPath          = "."
	DefaultTranscriptLanguage  = "en-US"
	DefaultConcurrentDownloads = 1
)

// CookieDomain is the domain checked for browser cookies.
const CookieDomain = "tiktok.com"
