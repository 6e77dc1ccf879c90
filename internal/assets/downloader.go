package assets

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ProgressFunc reports download progress as a 0-100 percentage.
type ProgressFunc func(progress float64)

// fetch issues the GET, checks the status, and wraps the body in a
// progress-reporting, self-closing reader. Both downloadFile and
// downloadAndExtractTarGz read from the same stream shape; only what they do
// with the bytes differs.
func fetch(ctx context.Context, url string, expectedSize int64, onProgress ProgressFunc) (*progressReader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request: %w", err)
	}

	resp, err := (&http.Client{Timeout: 0}).Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("assets: bad status fetching %s: %s", url, resp.Status)
	}

	totalSize := resp.ContentLength
	if totalSize <= 0 && expectedSize > 0 {
		totalSize = expectedSize
	}

	return &progressReader{
		body:         resp.Body,
		totalSize:    totalSize,
		onProgress:   onProgress,
		reportPeriod: 500 * time.Millisecond,
	}, nil
}

// progressReader wraps a response body, throttling progress callbacks and
// closing the underlying body on Close.
type progressReader struct {
	body         io.ReadCloser
	totalSize    int64
	downloaded   int64
	onProgress   ProgressFunc
	lastReport   time.Time
	reportPeriod time.Duration
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.body.Read(p)
	if n > 0 {
		pr.downloaded += int64(n)
		now := time.Now()
		if pr.onProgress != nil && pr.totalSize > 0 && (now.Sub(pr.lastReport) >= pr.reportPeriod || err == io.EOF) {
			pr.lastReport = now
			pr.onProgress(float64(pr.downloaded) / float64(pr.totalSize) * 100)
		}
	}
	return n, err
}

func (pr *progressReader) Close() error {
	return pr.body.Close()
}

// downloadFile fetches url into destPath via a temp-file-then-rename.
func downloadFile(ctx context.Context, url, destPath string, expectedSize int64, onProgress ProgressFunc) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("assets: create directory: %w", err)
	}

	body, err := fetch(ctx, url, expectedSize, onProgress)
	if err != nil {
		return err
	}
	defer body.Close()

	tmpPath := destPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("assets: create temp file: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("assets: write %s: %w", destPath, err)
	}
	out.Close()

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("assets: finalize %s: %w", destPath, err)
	}
	return nil
}

// downloadAndExtractTarGz fetches a .tar.gz archive and extracts it under
// destDir, guarding against path traversal from a malicious archive entry.
func downloadAndExtractTarGz(ctx context.Context, url, destDir string, expectedSize int64, onProgress ProgressFunc) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("assets: create directory: %w", err)
	}

	body, err := fetch(ctx, url, expectedSize, onProgress)
	if err != nil {
		return err
	}
	defer body.Close()

	gz, err := gzip.NewReader(body)
	if err != nil {
		return fmt.Errorf("assets: open gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("assets: read tar entry: %w", err)
		}
		if err := extractTarEntry(tr, header, destDir); err != nil {
			return err
		}
	}
}

// extractTarEntry writes a single tar entry under destDir, rejecting any
// entry whose resolved path would escape it.
func extractTarEntry(tr *tar.Reader, header *tar.Header, destDir string) error {
	target := filepath.Join(destDir, header.Name)
	if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(destDir)) {
		return fmt.Errorf("assets: archive entry escapes destination: %s", header.Name)
	}

	switch header.Typeflag {
	case tar.TypeDir:
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("assets: create %s: %w", target, err)
		}
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("assets: create %s: %w", filepath.Dir(target), err)
		}
		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("assets: create %s: %w", target, err)
		}
		defer f.Close()
		if _, err := io.Copy(f, tr); err != nil {
			return fmt.Errorf("assets: write %s: %w", target, err)
		}
	}
	return nil
}
