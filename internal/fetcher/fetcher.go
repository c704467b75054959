// Package fetcher opens dataset sources (local files or HTTP URLs) and parses
// CSV, XLSX, ZIP, and JSON payloads.
package fetcher

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Fetcher downloads remote sources.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadToFile fetches the URL and writes it to the given path. Returns bytes written.
	DownloadToFile(ctx context.Context, url string, path string) (int64, error)
}

// IsRemote reports whether src is an http(s) URL.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Open returns a reader for src: remote sources are downloaded with f, anything
// else is opened from the local filesystem.
func Open(ctx context.Context, f Fetcher, src string) (io.ReadCloser, error) {
	if IsRemote(src) {
		if f == nil {
			return nil, eris.Errorf("fetcher: no fetcher for remote source %s", src)
		}
		return f.Download(ctx, src)
	}
	file, err := os.Open(src)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", src)
	}
	return file, nil
}

// Localize makes src available as a local file, downloading remote sources into
// dir. Formats that need random access (XLSX, ZIP, shapefiles) go through here.
func Localize(ctx context.Context, f Fetcher, src, dir string) (string, error) {
	if !IsRemote(src) {
		return src, nil
	}
	if f == nil {
		return "", eris.Errorf("fetcher: no fetcher for remote source %s", src)
	}
	name := src[strings.LastIndex(src, "/")+1:]
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		name = "download"
	}
	out, err := os.CreateTemp(dir, "*-"+name)
	if err != nil {
		return "", eris.Wrap(err, "fetcher: create temp file")
	}
	path := out.Name()
	_ = out.Close()

	if _, err := f.DownloadToFile(ctx, src, path); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
