package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

// FetcherService downloads a resume from a remote link. Google Drive
// share links are rewritten to their direct-download form first.
type FetcherService interface {
	FetchResume(ctx context.Context, rawURL string) ([]byte, string, error)
}

type fetcherService struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcherService(timeout time.Duration, maxBytes int64) FetcherService {
	return &fetcherService{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

var driveFilePattern = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)

// FetchResume returns the downloaded bytes and a filename hint used to
// pick the text extractor (derived from the URL path or Content-Type).
func (f *fetcherService) FetchResume(ctx context.Context, rawURL string) ([]byte, string, error) {
	fetchURL := normalizeDriveURL(rawURL)

	parsed, err := url.ParseRequestURI(fetchURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, "", fmt.Errorf("invalid resume URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("resume fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read resume body: %w", err)
	}

	return data, filenameHint(parsed, resp.Header.Get("Content-Type")), nil
}

// normalizeDriveURL rewrites drive.google.com share links
// (".../d/<id>/...") into the uc?id=<id> direct-download form.
func normalizeDriveURL(rawURL string) string {
	if !strings.Contains(rawURL, "drive.google.com") {
		return rawURL
	}
	if m := driveFilePattern.FindStringSubmatch(rawURL); m != nil {
		return "https://drive.google.com/uc?id=" + m[1]
	}
	return rawURL
}

func filenameHint(parsed *url.URL, contentType string) string {
	if ext := strings.ToLower(path.Ext(parsed.Path)); ext == ".pdf" || ext == ".docx" || ext == ".txt" {
		return path.Base(parsed.Path)
	}

	switch {
	case strings.Contains(contentType, "application/pdf"):
		return "resume.pdf"
	case strings.Contains(contentType, "wordprocessingml"):
		return "resume.docx"
	case strings.Contains(contentType, "text/plain"):
		return "resume.txt"
	default:
		// The PDF reader rejects non-PDF bytes, so a wrong guess fails
		// loudly instead of producing garbage text.
		return "resume.pdf"
	}
}
