package parsing_test

import (
	"testing"
	"time"

	"tiktokdl/internal/parsing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"20240131", "2024-01-31", "Jan 31, 2024", " 2024-01-31 "} {
		t.Run(in, func(t *testing.T) {
			got, err := parsing.ParseDate(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a date"} {
		_, err := parsing.ParseDate(in)
		assert.Error(t, err, in)
	}
}
