// Package builder builds yt-dlp argument lists.
package builder

import (
	command "tiktokdl/internal/domain/command"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"
)

// MetaFetchArgs builds the arguments for a metadata-only request for the given URL.
//
// yt-dlp prints one JSON document (a video, or a listing with "entries") to stdout.
func MetaFetchArgs(url string, auth models.AuthOptions) []string {
	args := []string{command.FlatPlaylist, command.OutputJSON, command.NoWarnings}
	args = append(args, authArgs(auth)...)
	args = append(args, url)

	logging.D(2, "Built metadata argument list for URL %q: %v", url, args)
	return args
}

// authArgs forwards whichever cookie sources are set. Both may be sent.
func authArgs(auth models.AuthOptions) []string {
	var args []string
	if auth.CookiesFromBrowser != nil && *auth.CookiesFromBrowser != "" {
		args = append(args, command.CookiesFromBrowser, *auth.CookiesFromBrowser)
	}
	if auth.CookiesFile != nil && *auth.CookiesFile != "" {
		args = append(args, command.CookiePath, *auth.CookiesFile)
	}
	return args
}
