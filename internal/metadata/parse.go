// Package metadata turns yt-dlp output into video records and filters them.
package metadata

import (
	"errors"
	"fmt"
	"math"
	"time"

	"tiktokdl/internal/models"
	"tiktokdl/internal/parsing"
	"tiktokdl/internal/utils/logging"

	"github.com/valyala/fastjson"
)

// yt-dlp info dict fields.
const (
	fieldEntries    = "entries"
	fieldType       = "_type"
	fieldID         = "id"
	fieldWebpageURL = "webpage_url"
	fieldTitle      = "title"
	fieldLikeCount  = "like_count"
	fieldViewCount  = "view_count"
	fieldUploadDate = "upload_date"
)

const typePlaylist = "playlist"

var errNotObject = errors.New("yt-dlp output is not a JSON object")

// ParseVideoRecords normalizes a yt-dlp JSON document into records.
//
// A document with an "entries" key or "_type": "playlist" is a listing
// (user page, hashtag); anything else is a single video. Entries that are null, not objects, or
// missing "id" or "webpage_url" are skipped without failing the batch.
func ParseVideoRecords(raw []byte) ([]models.VideoRecord, error) {
	var p fastjson.Parser
	doc, err := p.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	if doc.Type() != fastjson.TypeObject {
		return nil, errNotObject
	}

	items := []*fastjson.Value{doc}
	if isListing(doc) {
		// A listing with null or non-array entries holds no videos
		items = nil
		if entries := doc.Get(fieldEntries); entries != nil && entries.Type() == fastjson.TypeArray {
			items, _ = entries.Array()
		}
	}

	records := make([]models.VideoRecord, 0, len(items))
	skipped := 0
	for _, item := range items {
		rec, ok := toRecord(item)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		logging.D(1, "Skipped %d malformed entries out of %d", skipped, len(items))
	}
	return records, nil
}

// isListing reports whether doc describes a collection rather than one video.
func isListing(doc *fastjson.Value) bool {
	return doc.Exists(fieldEntries) || string(doc.GetStringBytes(fieldType)) == typePlaylist
}

// toRecord converts one info dict. ok is false when required fields are missing.
func toRecord(v *fastjson.Value) (rec models.VideoRecord, ok bool) {
	if v == nil || v.Type() != fastjson.TypeObject {
		return rec, false
	}

	id, ok := stringField(v, fieldID)
	if !ok || id == "" {
		return rec, false
	}
	webpageURL, ok := stringField(v, fieldWebpageURL)
	if !ok || webpageURL == "" {
		return rec, false
	}

	rec = models.VideoRecord{
		ID:         id,
		WebpageURL: webpageURL,
		LikeCount:  countField(v, fieldLikeCount),
		ViewCount:  countField(v, fieldViewCount),
	}
	if title, ok := stringField(v, fieldTitle); ok {
		rec.Title = &title
	}
	if d, ok := stringField(v, fieldUploadDate); ok && d != "" {
		if t, err := parsing.ParseDate(d); err == nil {
			rec.UploadDate = &t
		} else {
			logging.D(2, "Ignoring upload date %q for video %q: %v", d, id, err)
		}
	}
	return rec, true
}

// stringField returns a string-typed field.
func stringField(v *fastjson.Value, key string) (string, bool) {
	f := v.Get(key)
	if f == nil || f.Type() != fastjson.TypeString {
		return "", false
	}
	return string(f.GetStringBytes()), true
}

// countField returns a non-negative integral count, or nil.
func countField(v *fastjson.Value, key string) *int64 {
	f := v.Get(key)
	if f == nil || f.Type() != fastjson.TypeNumber {
		return nil
	}

	n, err := f.Int64()
	if err != nil {
		fl, ferr := f.Float64()
		if ferr != nil || fl != math.Trunc(fl) || fl > math.MaxInt64 {
			return nil
		}
		n = int64(fl)
	}
	if n < 0 {
		return nil
	}
	return &n
}

// DateOnly formats an optional date for display.
func DateOnly(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
