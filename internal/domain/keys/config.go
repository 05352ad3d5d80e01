package keys

// Settings file keys (snake_case, read from the [defaults] section).
const (
	CfgOutputPath          string = "output_path"
	CfgMinLikes            string = "min_likes"
	CfgMinViews            string = "min_views"
	CfgTranscripts         string = "transcripts"
	CfgTranscriptLanguage  string = "transcript_language"
	CfgConcurrentDownloads string = "concurrent_downloads"
	CfgMinSleepInterval    string = "min_sleep_interval"
	CfgMaxSleepInterval    string = "max_sleep_interval"
	CfgCookiesFromBrowser  string = "cookies_from_browser"
	CfgCookiesFile         string = "cookies_file"
	CfgDownloadArchive     string = "download_archive"
	CfgDateAfter           string = "date_after"
	CfgHistoryDB           string = "history_db"
)

// EnvPrefix prefixes environment variables read through viper (TIKTOKDL_CONFIG).
const EnvPrefix string = "TIKTOKDL"
