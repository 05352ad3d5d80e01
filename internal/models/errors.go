package models

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by how the program was invoked (missing
// targets, malformed settings). Callers use it to pick an exit code.
var ErrUsage = errors.New("usage error")

// ErrNoTargets is returned when neither a URL nor a batch file yields a target.
var ErrNoTargets = fmt.Errorf("%w: you must provide either a TikTok URL or --from-file", ErrUsage)

// ConfigError reports a settings value that failed to parse or validate.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %q: %v", e.Value, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrUsage, e.Err}
}

// FetchError reports a failed metadata request for one URL.
type FetchError struct {
	URL    string
	Stderr string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("failed to fetch metadata for %q: %v: %s", e.URL, e.Err, e.Stderr)
	}
	return fmt.Sprintf("failed to fetch metadata for %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DispatchError reports a download run that exited unsuccessfully.
type DispatchError struct {
	Count int
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("download of %d video(s) failed: %v", e.Count, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
