// Package cfgflags registers command-line flags and turns them into overrides.
package cfgflags

import (
	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/keys"

	"github.com/spf13/cobra"
)

// SetTargetFlags sets flags naming where target URLs come from.
func SetTargetFlags(cmd *cobra.Command, fromFile *string) {
	if fromFile != nil {
		cmd.Flags().StringVarP(fromFile, keys.FromFile, "f", "", "Path to a file containing TikTok URLs (one per line)")
	}
}

// SetFileFlags sets flags for output and bookkeeping files.
func SetFileFlags(cmd *cobra.Command, outputPath, downloadArchive, exportCSV *string) {
	if outputPath != nil {
		cmd.Flags().StringVarP(outputPath, keys.OutputPath, "o", "", "Directory to save videos to")
	}

	if downloadArchive != nil {
		cmd.Flags().StringVar(downloadArchive, keys.DownloadArchive, "", "Path to the download archive file (default: <output-path>/.tiktok-downloader-archive.txt)")
	}

	if exportCSV != nil {
		cmd.Flags().StringVar(exportCSV, keys.ExportCSV, "", "Write the filtered video list to this CSV file")
	}
}

// SetFilterFlags sets flags for metadata filters.
func SetFilterFlags(cmd *cobra.Command, minLikes, minViews *int64, dateAfter *string) {
	if minLikes != nil {
		cmd.Flags().Int64Var(minLikes, keys.MinLikes, 0, "Minimum number of likes")
	}

	if minViews != nil {
		cmd.Flags().Int64Var(minViews, keys.MinViews, 0, "Minimum number of views")
	}

	if dateAfter != nil {
		cmd.Flags().StringVar(dateAfter, keys.DateAfter, "", "Only keep videos uploaded on or after this date (e.g. 20240131)")
	}
}

// SetTranscriptFlags sets the transcript toggle pair and language.
func SetTranscriptFlags(cmd *cobra.Command, transcripts, noTranscripts *bool, language *string) {
	if transcripts != nil {
		cmd.Flags().BoolVar(transcripts, keys.Transcripts, false, "Download transcripts (subtitles)")
	}

	if noTranscripts != nil {
		cmd.Flags().BoolVar(noTranscripts, keys.NoTranscripts, false, "Do not download transcripts")
	}

	if language != nil {
		cmd.Flags().StringVar(language, keys.TranscriptLanguage, "", "Transcript language (default: en-US)")
	}
}

// SetDownloadFlags sets flags forwarded to yt-dlp downloads.
func SetDownloadFlags(cmd *cobra.Command, metadataOnly *bool, concurrent, minSleep, maxSleep *int) {
	if metadataOnly != nil {
		cmd.Flags().BoolVar(metadataOnly, keys.MetadataOnly, false, "Only fetch and display metadata, do not download")
	}

	if concurrent != nil {
		cmd.Flags().IntVar(concurrent, keys.ConcurrentDownloads, 1, "Number of fragments yt-dlp downloads concurrently")
	}

	if minSleep != nil {
		cmd.Flags().IntVar(minSleep, keys.MinSleepInterval, 0, "Minimum seconds to sleep between downloads")
	}

	if maxSleep != nil {
		cmd.Flags().IntVar(maxSleep, keys.MaxSleepInterval, 0, "Maximum seconds to sleep between downloads")
	}
}

// SetAuthFlags sets cookie source flags.
func SetAuthFlags(cmd *cobra.Command, cookiesFromBrowser, cookiesFile *string, checkCookies *bool) {
	if cookiesFromBrowser != nil {
		cmd.Flags().StringVar(cookiesFromBrowser, keys.CookiesFromBrowser, "", "Browser to load cookies from (e.g. firefox, chrome:Profile 1)")
	}

	if cookiesFile != nil {
		cmd.Flags().StringVar(cookiesFile, keys.CookiesFile, "", "Path to a Netscape-format cookies file")
	}

	if checkCookies != nil {
		cmd.Flags().BoolVar(checkCookies, keys.CheckCookies, false, "Verify TikTok cookies are available before fetching")
	}
}

// SetProgramFlags sets persistent program-wide flags.
func SetProgramFlags(cmd *cobra.Command, configFile, historyDB, logFile *string, verbosity *int) {
	if configFile != nil {
		cmd.PersistentFlags().StringVarP(configFile, keys.ConfigFile, "c", consts.DefaultConfig, "Path to the settings file (env: TIKTOKDL_CONFIG)")
	}

	if historyDB != nil {
		cmd.PersistentFlags().StringVar(historyDB, keys.HistoryDB, "", "Path to the run history database (empty disables history)")
	}

	if logFile != nil {
		cmd.PersistentFlags().StringVar(logFile, keys.LogFile, "", "Also append log output to this file")
	}

	if verbosity != nil {
		cmd.PersistentFlags().CountVarP(verbosity, keys.Verbose, "v", "Increase verbosity (-v info, -vv debug)")
	}
}
