package cmd

import (
	"io"

	"tiktokdl/internal/app"
	"tiktokdl/internal/cfg"
	cfgflags "tiktokdl/internal/cfg/flags"
	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/print"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newHistoryCmd lists runs recorded in the history database.
func newHistoryCmd(stdout io.Writer, v *viper.Viper, rf *cfgflags.RootFlags) *cobra.Command {
	var (
		limit int
		runID string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List previous runs, or the videos downloaded in one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := cfg.LoadSettings(v.GetString(keys.ConfigFile), models.Overrides{
				HistoryDB: rf.Overrides(cmd.Flags()).HistoryDB,
			})
			if err != nil {
				return err
			}

			if runID != "" {
				videos, err := app.ListDispatched(s.HistoryDBPath, runID)
				if err != nil {
					return err
				}
				return print.Dispatched(stdout, runID, videos)
			}

			runs, err := app.ListRuns(s.HistoryDBPath, limit)
			if err != nil {
				return err
			}
			return print.Runs(stdout, runs)
		},
	}

	historyCmd.Flags().IntVar(&limit, keys.HistoryLimit, 20, "Maximum number of runs to list (0 for all)")
	historyCmd.Flags().StringVar(&runID, keys.HistoryRun, "", "Show the videos handed to yt-dlp during this run ID")
	return historyCmd
}
