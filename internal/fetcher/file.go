package fetcher

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// FileFetcher reads resources from the local filesystem.
type FileFetcher struct{}

// NewFileFetcher creates a FileFetcher.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// Download opens the file at path. A file:// prefix is accepted.
func (f *FileFetcher) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "file: context cancelled")
	}
	file, err := os.Open(strings.TrimPrefix(path, "file://"))
	if err != nil {
		return nil, eris.Wrap(err, "file: open")
	}
	return file, nil
}
