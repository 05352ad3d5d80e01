// Package print renders user-facing listings (video metadata, run history).
package print

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"tiktokdl/internal/metadata"
	"tiktokdl/internal/models"
)

const (
	separator = "--------------------"
	missing   = "n/a"
)

// Videos writes the metadata of each video, one block per video.
func Videos(w io.Writer, videos []models.VideoRecord) {
	if len(videos) == 0 {
		fmt.Fprintln(w, "No videos to display.")
		return
	}

	for _, v := range videos {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "ID:          %s\n", v.ID)
		fmt.Fprintf(w, "Title:       %s\n", orMissing(v.Title))
		fmt.Fprintf(w, "Likes:       %s\n", count(v.LikeCount))
		fmt.Fprintf(w, "Views:       %s\n", count(v.ViewCount))
		if d := metadata.DateOnly(v.UploadDate); d != "" {
			fmt.Fprintf(w, "Uploaded:    %s\n", d)
		}
		fmt.Fprintf(w, "URL:         %s\n", v.WebpageURL)
	}
	fmt.Fprintln(w, separator)
}

// Runs writes recorded runs as a table.
func Runs(w io.Writer, runs []models.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN ID\tSTARTED\tMODE\tTARGETS\tFAILED\tFETCHED\tMATCHED\tDISPATCHED\tERROR")

	for _, r := range runs {
		mode := "download"
		if r.MetadataOnly {
			mode = "metadata"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			mode,
			r.Targets,
			r.FailedURLs,
			r.Fetched,
			r.Matched,
			r.Dispatched,
			truncate(r.Error, 40),
		)
	}
	return tw.Flush()
}

// Dispatched writes the videos handed to yt-dlp during a run.
func Dispatched(w io.Writer, runID string, videos []models.DispatchedVideo) error {
	if len(videos) == 0 {
		fmt.Fprintf(w, "No videos recorded for run %s.\n", runID)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VIDEO ID\tURL")
	for _, v := range videos {
		fmt.Fprintf(tw, "%s\t%s\n", v.VideoID, v.WebpageURL)
	}
	return tw.Flush()
}

func orMissing(s *string) string {
	if s == nil {
		return missing
	}
	return *s
}

func count(n *int64) string {
	if n == nil {
		return missing
	}
	return strconv.FormatInt(*n, 10)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
