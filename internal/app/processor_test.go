package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiktokdl/internal/command/execute"
	"tiktokdl/internal/models"
	"tiktokdl/internal/parsing"
	"tiktokdl/internal/utils/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(n int64) *int64 { return &n }

// scriptedRunner plays the part of yt-dlp: metadata requests get the JSON
// registered for their URL, download requests are recorded.
type scriptedRunner struct {
	meta      map[string]string
	failURLs  map[string]bool
	downloads [][]string
	dlErr     error
}

func (r *scriptedRunner) Run(_ context.Context, args []string, stdout, _ io.Writer) error {
	target := args[len(args)-1]
	if len(args) > 0 && args[0] == "--flat-playlist" {
		if r.failURLs[target] {
			return errors.New("exit status 1")
		}
		_, err := io.WriteString(stdout, r.meta[target])
		return err
	}
	r.downloads = append(r.downloads, append([]string(nil), args...))
	return r.dlErr
}

func pipeline(r *scriptedRunner) Deps {
	return Deps{
		Fetcher:    execute.NewMetaFetcher(r),
		Downloader: &execute.Dispatcher{Runner: r, Stdout: io.Discard, Stderr: io.Discard},
	}
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.ini")
}

const twoVideos = `{"entries": [
	{"id": "1", "webpage_url": "https://www.tiktok.com/@u/video/1", "like_count": 10},
	{"id": "2", "webpage_url": "https://www.tiktok.com/@u/video/2", "like_count": 200}
]}`

func TestRun_MinLikesEndToEnd(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}
	out := t.TempDir()

	res, err := Run(context.Background(), Request{
		URL:        "https://www.tiktok.com/@u",
		ConfigPath: missingConfig(t),
		Overrides:  models.Overrides{MinLikes: i64(50), OutputPath: &out},
	}, pipeline(r))
	require.NoError(t, err)

	require.Len(t, res.Videos, 1)
	assert.Equal(t, "2", res.Videos[0].ID)
	assert.Equal(t, 2, res.Fetched)
	assert.True(t, res.Dispatched)

	require.Len(t, r.downloads, 1)
	dl := r.downloads[0]
	assert.Equal(t, "https://www.tiktok.com/@u/video/2", dl[len(dl)-1])
	assert.NotContains(t, dl, "https://www.tiktok.com/@u/video/1")
	assert.Contains(t, dl, filepath.Join(out, ".tiktok-downloader-archive.txt"))
}

func TestRun_MetadataOnlySkipsDownload(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}

	res, err := Run(context.Background(), Request{
		URL:          "https://www.tiktok.com/@u",
		ConfigPath:   missingConfig(t),
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)

	assert.Len(t, res.Videos, 2)
	assert.False(t, res.Dispatched)
	assert.Empty(t, r.downloads)
}

func TestRun_FailedURLContinues(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(batch, []byte("https://www.tiktok.com/@bad\n\nhttps://www.tiktok.com/@u\n"), 0o644))

	r := &scriptedRunner{
		meta:     map[string]string{"https://www.tiktok.com/@u": twoVideos},
		failURLs: map[string]bool{"https://www.tiktok.com/@bad": true},
	}

	res, err := Run(context.Background(), Request{
		FromFile:     batch,
		ConfigPath:   missingConfig(t),
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://www.tiktok.com/@bad"}, res.FailedURLs)
	assert.Len(t, res.Videos, 2)
}

func TestRun_NoTargets(t *testing.T) {
	_, err := Run(context.Background(), Request{ConfigPath: missingConfig(t)}, pipeline(&scriptedRunner{}))
	assert.ErrorIs(t, err, models.ErrNoTargets)
	assert.ErrorIs(t, err, models.ErrUsage)
}

func TestRun_BadConfigIsUsageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nmin_likes = lots\n"), 0o644))

	_, err := Run(context.Background(), Request{URL: "https://www.tiktok.com/@u", ConfigPath: path}, pipeline(&scriptedRunner{}))
	assert.ErrorIs(t, err, models.ErrUsage)
}

func TestRun_ConfigThresholdApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nmin_likes = 10\n"), 0o644))
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}

	res, err := Run(context.Background(), Request{
		URL:          "https://www.tiktok.com/@u",
		ConfigPath:   path,
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)
	assert.Len(t, res.Videos, 2)

	res, err = Run(context.Background(), Request{
		URL:          "https://www.tiktok.com/@u",
		ConfigPath:   path,
		Overrides:    models.Overrides{MinLikes: i64(100)},
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)
	require.Len(t, res.Videos, 1)
	assert.Equal(t, "2", res.Videos[0].ID)
}

func TestRun_DispatchFailureIsNotUsage(t *testing.T) {
	r := &scriptedRunner{
		meta:  map[string]string{"https://www.tiktok.com/@u": twoVideos},
		dlErr: errors.New("exit status 1"),
	}
	out := t.TempDir()

	_, err := Run(context.Background(), Request{
		URL:        "https://www.tiktok.com/@u",
		ConfigPath: missingConfig(t),
		Overrides:  models.Overrides{OutputPath: &out},
	}, pipeline(r))

	var dispatchErr *models.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, 2, dispatchErr.Count)
	assert.NotErrorIs(t, err, models.ErrUsage)
}

func TestRun_NothingMatchedSkipsEngine(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}

	res, err := Run(context.Background(), Request{
		URL:        "https://www.tiktok.com/@u",
		ConfigPath: missingConfig(t),
		Overrides:  models.Overrides{MinLikes: i64(1000)},
	}, pipeline(r))
	require.NoError(t, err)
	assert.Empty(t, res.Videos)
	assert.False(t, res.Dispatched)
	assert.Empty(t, r.downloads)
}

func TestRun_ExportCSV(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}
	csvPath := filepath.Join(t.TempDir(), "videos.csv")

	_, err := Run(context.Background(), Request{
		URL:          "https://www.tiktok.com/@u",
		ConfigPath:   missingConfig(t),
		MetadataOnly: true,
		ExportCSV:    csvPath,
	}, pipeline(r))
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Request{URL: "https://www.tiktok.com/@u", ConfigPath: missingConfig(t)}, pipeline(&scriptedRunner{}))
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeHistory struct {
	started    int
	finished   []models.Run
	dispatched map[string][]models.VideoRecord
}

func (h *fakeHistory) StartRun(metadataOnly bool, targets int) (models.Run, error) {
	h.started++
	return models.Run{ID: "run-1", MetadataOnly: metadataOnly, Targets: targets}, nil
}

func (h *fakeHistory) FinishRun(run *models.Run) error {
	h.finished = append(h.finished, *run)
	return nil
}

func (h *fakeHistory) AddDispatched(runID string, videos []models.VideoRecord) error {
	if h.dispatched == nil {
		h.dispatched = map[string][]models.VideoRecord{}
	}
	h.dispatched[runID] = append(h.dispatched[runID], videos...)
	return nil
}

func TestRun_RecordsHistory(t *testing.T) {
	r := &scriptedRunner{
		meta:     map[string]string{"https://www.tiktok.com/@u": twoVideos},
		failURLs: map[string]bool{"https://www.tiktok.com/@bad": true},
	}
	batch := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(batch, []byte("https://www.tiktok.com/@bad\n"), 0o644))
	out := t.TempDir()

	h := &fakeHistory{}
	deps := pipeline(r)
	deps.History = h

	_, err := Run(context.Background(), Request{
		URL:        "https://www.tiktok.com/@u",
		FromFile:   batch,
		ConfigPath: missingConfig(t),
		Overrides:  models.Overrides{MinLikes: i64(50), OutputPath: &out},
	}, deps)
	require.NoError(t, err)

	assert.Equal(t, 1, h.started)
	require.Len(t, h.finished, 1)
	run := h.finished[0]
	assert.Equal(t, 2, run.Targets)
	assert.Equal(t, 1, run.FailedURLs)
	assert.Equal(t, 2, run.Fetched)
	assert.Equal(t, 1, run.Matched)
	assert.Equal(t, 1, run.Dispatched)
	assert.Empty(t, run.Error)
	require.Len(t, h.dispatched["run-1"], 1)
	assert.Equal(t, "2", h.dispatched["run-1"][0].ID)
}

func TestRun_HistoryDatabase(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://www.tiktok.com/@u": twoVideos}}
	dbPath := filepath.Join(t.TempDir(), "history.db")

	_, err := Run(context.Background(), Request{
		URL:          "https://www.tiktok.com/@u",
		ConfigPath:   missingConfig(t),
		Overrides:    models.Overrides{HistoryDB: &dbPath},
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)

	runs, err := ListRuns(dbPath, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].MetadataOnly)
	assert.Equal(t, 2, runs[0].Matched)
}

func TestRun_UnknownHostStillFetched(t *testing.T) {
	r := &scriptedRunner{meta: map[string]string{"https://example.com/x": twoVideos}}
	res, err := Run(context.Background(), Request{
		URL:          "https://example.com/x",
		ConfigPath:   missingConfig(t),
		MetadataOnly: true,
	}, pipeline(r))
	require.NoError(t, err)
	assert.Len(t, res.Videos, 2)
}

func TestForeignURLWarnedOnce(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logging.SetupLogging(logging.LoggingConfig{Console: &buf, NoColor: true}))
	t.Cleanup(func() { _ = logging.SetupLogging(logging.LoggingConfig{}) })

	urls, err := parsing.CollectURLs("https://example.com/x", "")
	require.NoError(t, err)
	warnForeignURLs(urls)

	assert.Equal(t, 1, strings.Count(buf.String(), "does not look like a TikTok URL"))
}
