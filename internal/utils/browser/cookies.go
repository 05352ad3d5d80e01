// Package browser checks that TikTok session cookies are reachable before a run.
package browser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
)

// ErrNoCookies is returned when no valid TikTok cookies could be found.
var ErrNoCookies = errors.New("no valid " + consts.CookieDomain + " cookies found")

// cookieStore is the part of kooky.CookieStore used here.
type cookieStore interface {
	Browser() string
	ReadCookies(filters ...kooky.Filter) ([]*kooky.Cookie, error)
}

// findCookieStores lists the cookie stores of every installed browser.
var findCookieStores = func() []cookieStore {
	all := kooky.FindAllCookieStores()
	stores := make([]cookieStore, 0, len(all))
	for _, s := range all {
		stores = append(stores, s)
	}
	return stores
}

// CheckCookies verifies the configured cookie source before yt-dlp is invoked.
//
// A cookie file must exist and be a regular file. A browser source is checked
// by reading valid TikTok cookies from that browser's stores only.
// With no cookie source configured, nothing is checked.
func CheckCookies(auth models.AuthOptions) (int, error) {
	if auth.CookiesFile != nil && *auth.CookiesFile != "" {
		if err := checkCookieFile(*auth.CookiesFile); err != nil {
			return 0, err
		}
	}

	if auth.CookiesFromBrowser == nil || *auth.CookiesFromBrowser == "" {
		return 0, nil
	}
	return countBrowserCookies(browserName(*auth.CookiesFromBrowser))
}

// browserName strips keyring, profile and container from a yt-dlp
// BROWSER[+KEYRING][:PROFILE][::CONTAINER] value.
func browserName(source string) string {
	if i := strings.IndexAny(source, "+:"); i >= 0 {
		source = source[:i]
	}
	return strings.ToLower(strings.TrimSpace(source))
}

// countBrowserCookies returns the number of valid TikTok cookies held by the named browser.
func countBrowserCookies(name string) (int, error) {
	var (
		total    int
		searched int
		readErrs []error
	)

	for _, store := range findCookieStores() {
		if !strings.EqualFold(store.Browser(), name) {
			continue
		}
		searched++

		cookies, err := store.ReadCookies(kooky.Valid, kooky.DomainHasSuffix(consts.CookieDomain))
		if err != nil {
			logging.D(1, "Failed to read cookies from %s store: %v", name, err)
			readErrs = append(readErrs, err)
			continue
		}
		total += len(cookies)
	}

	switch {
	case searched == 0:
		return 0, fmt.Errorf("%w: no cookie store found for browser %q", ErrNoCookies, name)
	case total == 0 && len(readErrs) == searched:
		return 0, fmt.Errorf("failed reading %s cookies: %w", name, errors.Join(readErrs...))
	case total == 0:
		return 0, fmt.Errorf("%w (browser %q)", ErrNoCookies, name)
	}

	logging.I("Found %d cookies for %s in %s", total, consts.CookieDomain, name)
	return total, nil
}

// checkCookieFile confirms a Netscape cookie file is present.
func checkCookieFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cookie file %q is not readable: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cookie file %q is a directory", path)
	}
	logging.D(1, "Using cookie file %q", path)
	return nil
}
