package service

import (
	"net/url"
	"regexp"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

const (
	driveHost           = "drive.google.com"
	driveDownloadFormat = "https://drive.google.com/uc?export=download&id="
)

// driveFileIDPatterns are tried in order; the first match wins
var driveFileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/open\?id=([a-zA-Z0-9_-]+)`),
}

// URLResolver rewrites Google Drive share links into direct-download URLs
type URLResolver struct{}

// NewURLResolver creates a new URL resolver
func NewURLResolver() *URLResolver {
	return &URLResolver{}
}

// ResolveURL returns the URL to download. Non-Drive URLs are returned unchanged.
func (r *URLResolver) ResolveURL(rawURL string) (string, error) {
	if !IsDriveURL(rawURL) {
		return rawURL, nil
	}

	fileID, ok := extractDriveFileID(rawURL)
	if !ok {
		return "", apperrors.NewInvalidURLError(domain.ErrDriveFileIDNotFound.Error())
	}
	return driveDownloadFormat + fileID, nil
}

// IsDriveURL reports whether the URL's host is Google Drive
func IsDriveURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.Contains(rawURL, driveHost)
	}
	return strings.Contains(strings.ToLower(u.Host), driveHost)
}

func extractDriveFileID(rawURL string) (string, bool) {
	for _, pattern := range driveFileIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1], true
		}
	}
	return "", false
}
