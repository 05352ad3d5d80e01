package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
)

var csvHeader = []string{"id", "webpage_url", "title", "like_count", "view_count", "upload_date"}

// WriteVideosCSV writes the given records to a CSV file, creating parent directories.
//
// An empty list writes nothing.
func WriteVideosCSV(videos []models.VideoRecord, path string) (err error) {
	if len(videos) == 0 {
		logging.I("No videos to save.")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), consts.PermsOutputDir); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsGenericFile)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, v := range videos {
		if err := w.Write(csvRow(v)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed writing CSV file %q: %w", path, err)
	}

	logging.I("Successfully saved metadata for %d videos to %s", len(videos), path)
	return nil
}

func csvRow(v models.VideoRecord) []string {
	row := []string{v.ID, v.WebpageURL, v.TitleOrEmpty(), "", "", ""}
	if v.LikeCount != nil {
		row[3] = strconv.FormatInt(*v.LikeCount, 10)
	}
	if v.ViewCount != nil {
		row[4] = strconv.FormatInt(*v.ViewCount, 10)
	}
	if v.UploadDate != nil {
		row[5] = v.UploadDate.Format("2006-01-02")
	}
	return row
}
