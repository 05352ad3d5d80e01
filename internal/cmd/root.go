// Package cmd wires the command-line interface to the pipeline.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"tiktokdl/internal/app"
	cfgflags "tiktokdl/internal/cfg/flags"
	"tiktokdl/internal/command/execute"
	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
	"tiktokdl/internal/utils/print"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the tiktokdl command tree.
//
// newDeps supplies the pipeline collaborators and is only called for runs
// that get past argument parsing.
func NewRootCmd(stdout io.Writer, newDeps func() (app.Deps, error)) *cobra.Command {
	rf := &cfgflags.RootFlags{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   consts.ProgramName + " [URL]",
		Short: "Filter and download TikTok videos with yt-dlp",
		Long: "Fetches metadata for a TikTok video, user or hashtag page, keeps the videos " +
			"matching the like/view/date thresholds and downloads them with yt-dlp.",
		Args:          maxOneURL,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.SetupLogging(logging.LoggingConfig{
				Verbosity:   rf.Verbosity,
				LogFilePath: rf.LogFile,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.Validate(cmd.Flags()); err != nil {
				return err
			}

			deps, err := newDeps()
			if err != nil {
				return err
			}

			req := app.Request{
				FromFile:     rf.FromFile,
				ConfigPath:   v.GetString(keys.ConfigFile),
				Overrides:    rf.Overrides(cmd.Flags()),
				MetadataOnly: rf.MetadataOnly,
				ExportCSV:    rf.ExportCSV,
				CheckCookies: rf.CheckCookies,
			}
			if len(args) == 1 {
				req.URL = args[0]
			}
			return runPipeline(cmd.Context(), stdout, req, deps)
		},
	}

	cfgflags.SetTargetFlags(rootCmd, &rf.FromFile)
	cfgflags.SetFileFlags(rootCmd, &rf.OutputPath, &rf.DownloadArchive, &rf.ExportCSV)
	cfgflags.SetFilterFlags(rootCmd, &rf.MinLikes, &rf.MinViews, &rf.DateAfter)
	cfgflags.SetTranscriptFlags(rootCmd, &rf.Transcripts, &rf.NoTranscripts, &rf.TranscriptLanguage)
	cfgflags.SetDownloadFlags(rootCmd, &rf.MetadataOnly, &rf.ConcurrentDownloads, &rf.MinSleepInterval, &rf.MaxSleepInterval)
	cfgflags.SetAuthFlags(rootCmd, &rf.CookiesFromBrowser, &rf.CookiesFile, &rf.CheckCookies)
	cfgflags.SetProgramFlags(rootCmd, &rf.ConfigFile, &rf.HistoryDB, &rf.LogFile, &rf.Verbosity)

	// Config path: flag, then TIKTOKDL_CONFIG, then the flag default
	v.SetEnvPrefix(keys.EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		panic(fmt.Sprintf("binding %q flag: %v", keys.ConfigFile, err))
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", models.ErrUsage, err)
	})

	rootCmd.AddCommand(newHistoryCmd(stdout, v, rf))
	return rootCmd
}

// runPipeline runs the pipeline and prints its result.
func runPipeline(ctx context.Context, stdout io.Writer, req app.Request, deps app.Deps) error {
	if req.MetadataOnly {
		logging.I("Fetching metadata...")
	}

	res, err := app.Run(ctx, req, deps)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Found %d videos that match the criteria.\n", len(res.Videos))
	if req.MetadataOnly {
		print.Videos(stdout, res.Videos)
		return nil
	}

	if len(res.Videos) == 0 {
		fmt.Fprintln(stdout, "No videos to download.")
	}
	if len(res.FailedURLs) > 0 {
		fmt.Fprintf(stdout, "Failed to fetch %d URL(s).\n", len(res.FailedURLs))
	}
	return nil
}

// maxOneURL accepts at most one positional URL.
func maxOneURL(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most one URL, received %d", models.ErrUsage, len(args))
	}
	return nil
}

// DefaultDeps drives the yt-dlp executable found on $PATH.
func DefaultDeps() (app.Deps, error) {
	runner := execute.NewExecRunner()
	return app.Deps{
		Fetcher:    execute.NewMetaFetcher(runner),
		Downloader: execute.NewDispatcher(runner),
	}, nil
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, DefaultDeps).ExecuteContext(ctx)
}
