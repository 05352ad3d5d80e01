package parsing

import (
	"fmt"
	"net/url"
	"strings"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/errconsts"
	"tiktokdl/internal/file"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"

	"golang.org/x/net/publicsuffix"
)

// CollectURLs builds the ordered target list.
//
// Lines from batchFile come first, in file order, followed by singleURL.
// An empty result returns models.ErrNoTargets.
func CollectURLs(singleURL, batchFile string) ([]string, error) {
	var urls []string

	if batchFile != "" {
		logging.I("Reading URLs from file: %s", batchFile)
		lines, err := file.ReadFileLines(batchFile)
		if err != nil {
			return nil, fmt.Errorf("%w: "+errconsts.BatchFileReadFail, models.ErrUsage, batchFile, err)
		}
		logging.D(1, "Found %d URLs in %s", len(lines), batchFile)
		urls = append(urls, lines...)
	}

	if u := strings.TrimSpace(singleURL); u != "" {
		logging.I("Adding URL from argument: %s", u)
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return nil, models.ErrNoTargets
	}

	logging.I("Total URLs to process: %d", len(urls))
	return urls, nil
}

// URLKind is the listing type a TikTok URL points at.
type URLKind string

const (
	KindVideo   URLKind = "video"
	KindUser    URLKind = "user"
	KindHashtag URLKind = "hashtag"
	KindShort   URLKind = "short-link"
	KindUnknown URLKind = "unknown"
)

// ClassifyURL reports the listing type of rawURL and whether its registrable
// domain is tiktok.com.
func ClassifyURL(rawURL string) (URLKind, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return KindUnknown, false
	}

	host := strings.ToLower(u.Hostname())
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil || domain != consts.CookieDomain {
		return KindUnknown, false
	}

	if strings.HasPrefix(host, "vm.") || strings.HasPrefix(host, "vt.") {
		return KindShort, true
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case len(segs) >= 3 && strings.HasPrefix(segs[0], "@") && segs[1] == "video":
		return KindVideo, true
	case len(segs) >= 1 && strings.HasPrefix(segs[0], "@") && len(segs[0]) > 1:
		return KindUser, true
	case len(segs) >= 2 && segs[0] == "tag":
		return KindHashtag, true
	}
	return KindUnknown, true
}
