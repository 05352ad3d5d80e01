package metadata

import (
	"tiktokdl/internal/models"
)

// ApplyFilters returns the records satisfying every threshold in c, in input order.
//
// A record missing a field that a threshold refers to is excluded. With no
// thresholds set the input slice is returned as-is. The input is never modified.
func ApplyFilters(records []models.VideoRecord, c models.FilterCriteria) []models.VideoRecord {
	if c.IsEmpty() {
		return records
	}

	out := make([]models.VideoRecord, 0, len(records))
	for _, v := range records {
		if passesFilters(v, c) {
			out = append(out, v)
		}
	}
	return out
}

// passesFilters checks a single record against the criteria.
func passesFilters(v models.VideoRecord, c models.FilterCriteria) bool {
	if c.MinLikes != nil && (v.LikeCount == nil || *v.LikeCount < *c.MinLikes) {
		return false
	}
	if c.MinViews != nil && (v.ViewCount == nil || *v.ViewCount < *c.MinViews) {
		return false
	}
	if c.UploadedAfter != nil && (v.UploadDate == nil || v.UploadDate.Before(*c.UploadedAfter)) {
		return false
	}
	return true
}
