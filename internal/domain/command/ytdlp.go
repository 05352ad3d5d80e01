// Package command holds yt-dlp executable and argument constants.
package command

// General
const (
	YTDLP              = "yt-dlp"
	CookiesFromBrowser = "--cookies-from-browser"
	CookiePath         = "--cookies"
	Output             = "-o"
	NoWarnings         = "--no-warnings"
)

// OutputTemplate is appended to the output directory, e.g. "out/%(title)s [%(id)s].%(ext)s".
const OutputTemplate = "%(title)s [%(id)s].%(ext)s"

// Metadata only
const (
	FlatPlaylist = "--flat-playlist"
	OutputJSON   = "-J"
)

// Download
const (
	WriteThumbnail      = "--write-thumbnail"
	WriteSubs           = "--write-subs"
	WriteAutoSubs       = "--write-auto-subs"
	SubLangs            = "--sub-langs"
	ConcurrentFragments = "--concurrent-fragments"
	SleepInterval       = "--sleep-interval"
	MaxSleepInterval    = "--max-sleep-interval"
	DownloadArchive     = "--download-archive"
)
