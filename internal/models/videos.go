package models

import "time"

// VideoRecord is one observed video as reported by yt-dlp.
//
// ID and WebpageURL are always set. The remaining fields are nil when the
// extractor did not report them.
type VideoRecord struct {
	ID         string     `json:"id"`
	WebpageURL string     `json:"webpage_url"`
	Title      *string    `json:"title,omitempty"`
	LikeCount  *int64     `json:"like_count,omitempty"`
	ViewCount  *int64     `json:"view_count,omitempty"`
	UploadDate *time.Time `json:"upload_date,omitempty"`
}

// TitleOrEmpty returns the title, or an empty string if absent.
func (v VideoRecord) TitleOrEmpty() string {
	if v.Title == nil {
		return ""
	}
	return *v.Title
}

// FilterCriteria holds the thresholds applied to fetched records.
//
// A nil field places no constraint.
type FilterCriteria struct {
	MinLikes      *int64
	MinViews      *int64
	UploadedAfter *time.Time
}

// IsEmpty reports whether no constraint is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.MinLikes == nil && c.MinViews == nil && c.UploadedAfter == nil
}

// AuthOptions are the cookie sources forwarded to yt-dlp.
type AuthOptions struct {
	CookiesFromBrowser *string
	CookiesFile        *string
}
