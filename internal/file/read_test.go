package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tiktokdl/internal/file"
	"tiktokdl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigRecord_MissingFile(t *testing.T) {
	rec, err := file.LoadConfigRecord(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, models.ConfigRecord{}, rec)
}

func TestLoadConfigRecord_MissingSection(t *testing.T) {
	path := writeTemp(t, "config.ini", "[other]\nmin_likes = 10\n")

	rec, err := file.LoadConfigRecord(path)
	require.NoError(t, err)
	assert.Equal(t, models.ConfigRecord{}, rec)
}

func TestLoadConfigRecord_AllKeys(t *testing.T) {
	path := writeTemp(t, "config.ini", `[defaults]
output_path = /videos
min_likes = 100
min_views = 010
transcripts = yes
transcript_language = es
concurrent_downloads = 4
min_sleep_interval = 2
max_sleep_interval = 8
cookies_from_browser = firefox
cookies_file = /tmp/cookies.txt
download_archive = /videos/archive.txt
date_after = 20240101
unknown_key = ignored
`)

	rec, err := file.LoadConfigRecord(path)
	require.NoError(t, err)

	require.NotNil(t, rec.OutputPath)
	assert.Equal(t, "/videos", *rec.OutputPath)
	require.NotNil(t, rec.MinLikes)
	assert.EqualValues(t, 100, *rec.MinLikes)
	require.NotNil(t, rec.MinViews)
	assert.EqualValues(t, 10, *rec.MinViews)
	require.NotNil(t, rec.Transcripts)
	assert.True(t, *rec.Transcripts)
	require.NotNil(t, rec.TranscriptLanguage)
	assert.Equal(t, "es", *rec.TranscriptLanguage)
	require.NotNil(t, rec.ConcurrentDownloads)
	assert.Equal(t, 4, *rec.ConcurrentDownloads)
	require.NotNil(t, rec.MinSleepInterval)
	assert.Equal(t, 2, *rec.MinSleepInterval)
	require.NotNil(t, rec.MaxSleepInterval)
	assert.Equal(t, 8, *rec.MaxSleepInterval)
	require.NotNil(t, rec.CookiesFromBrowser)
	assert.Equal(t, "firefox", *rec.CookiesFromBrowser)
	require.NotNil(t, rec.CookiesFile)
	assert.Equal(t, "/tmp/cookies.txt", *rec.CookiesFile)
	require.NotNil(t, rec.DownloadArchive)
	assert.Equal(t, "/videos/archive.txt", *rec.DownloadArchive)
	require.NotNil(t, rec.DateAfter)
	assert.Equal(t, "20240101", *rec.DateAfter)
	assert.Nil(t, rec.HistoryDB)
}

func TestLoadConfigRecord_PartialSection(t *testing.T) {
	path := writeTemp(t, "config.ini", "[defaults]\ntranscripts = off\n")

	rec, err := file.LoadConfigRecord(path)
	require.NoError(t, err)
	require.NotNil(t, rec.Transcripts)
	assert.False(t, *rec.Transcripts)
	assert.Nil(t, rec.MinLikes)
	assert.Nil(t, rec.OutputPath)
}

func TestLoadConfigRecord_BadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{name: "non-numeric int", content: "[defaults]\nmin_likes = lots\n", key: "min_likes"},
		{name: "hex int", content: "[defaults]\nmin_views = 0x10\n", key: "min_views"},
		{name: "bad bool", content: "[defaults]\ntranscripts = maybe\n", key: "transcripts"},
		{name: "empty int", content: "[defaults]\nconcurrent_downloads =\n", key: "concurrent_downloads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "config.ini", tt.content)

			_, err := file.LoadConfigRecord(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrUsage)

			var cfgErr *models.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestLoadConfigRecord_Directory(t *testing.T) {
	_, err := file.LoadConfigRecord(t.TempDir())
	assert.ErrorIs(t, err, models.ErrUsage)
}

func TestReadFileLines(t *testing.T) {
	path := writeTemp(t, "urls.txt", "  a  \n\n\t\nb\n# kept\n")

	lines, err := file.ReadFileLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "# kept"}, lines)
}
