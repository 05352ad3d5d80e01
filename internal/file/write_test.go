package file_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tiktokdl/internal/file"
	"tiktokdl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVideosCSV(t *testing.T) {
	title := "First"
	likes := int64(12)
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	videos := []models.VideoRecord{
		{ID: "1", WebpageURL: "https://www.tiktok.com/@a/video/1", Title: &title, LikeCount: &likes, UploadDate: &date},
		{ID: "2", WebpageURL: "https://www.tiktok.com/@a/video/2"},
	}

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, file.WriteVideosCSV(videos, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "webpage_url", "title", "like_count", "view_count", "upload_date"}, rows[0])
	assert.Equal(t, []string{"1", "https://www.tiktok.com/@a/video/1", "First", "12", "", "2024-03-09"}, rows[1])
	assert.Equal(t, []string{"2", "https://www.tiktok.com/@a/video/2", "", "", "", ""}, rows[2])
}

func TestWriteVideosCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, file.WriteVideosCSV(nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
