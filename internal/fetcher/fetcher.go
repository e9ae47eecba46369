// Package fetcher retrieves dashboard resources over HTTP, FTP, or from a local
// directory, and parses JSON and XLSX payloads.
package fetcher

import (
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Fetcher defines the interface for retrieving a resource.
type Fetcher interface {
	// Download fetches the location and returns its body. The caller closes it.
	Download(ctx context.Context, location string) (io.ReadCloser, error)
}

// Options configures the fetcher chosen by ForSource.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// RateLimit caps HTTP requests per second to the source host; 0 disables it.
	RateLimit float64
}

// ForSource returns the fetcher for a data source: http(s) and ftp URLs use the
// network fetchers, anything else is treated as a local directory.
func ForSource(source string, opts Options) (Fetcher, error) {
	switch scheme(source) {
	case "http", "https":
		hopts := HTTPOptions{UserAgent: opts.UserAgent, Timeout: opts.Timeout}
		if opts.RateLimit > 0 {
			u, err := url.Parse(source)
			if err != nil {
				return nil, eris.Wrap(err, "fetcher: parse source")
			}
			hopts.RateLimiters = map[string]*rate.Limiter{
				u.Host: rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
			}
		}
		return NewHTTPFetcher(hopts), nil
	case "ftp":
		return NewFTPFetcher(FTPOptions{Timeout: opts.Timeout}), nil
	case "file", "":
		return NewFileFetcher(), nil
	default:
		return nil, eris.Errorf("fetcher: unsupported source scheme %q", scheme(source))
	}
}

// Resolve joins a relative resource name onto a source base.
func Resolve(source, name string) (string, error) {
	switch scheme(source) {
	case "", "file":
		dir := strings.TrimPrefix(source, "file://")
		return filepath.Join(dir, name), nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return "", eris.Wrap(err, "fetcher: parse source")
	}
	u.Path = path.Join("/", u.Path, name)
	return u.String(), nil
}

func scheme(source string) string {
	i := strings.Index(source, "://")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(source[:i])
}
