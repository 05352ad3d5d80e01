// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	YTDLPFailure  = "yt-dlp command failed: %w"
	YTDLPNotFound = "yt-dlp command not found: %w"
)

// File
const (
	ConfigFileReadFail = "failed to read config file %q: %w"
	BatchFileReadFail  = "failed to read URL file %q: %w"
)

// Database
const (
	TxBeginFail  = "failed to begin transaction: %w"
	TxCommitFail = "failed to commit transaction: %w"
)
