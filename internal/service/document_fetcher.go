package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/dustin/go-humanize"
	"github.com/imroc/req/v3"
)

// DocumentFetcher downloads documents with a single streaming GET
type DocumentFetcher struct {
	client      *req.Client
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentFetcher creates a fetcher that rejects payloads above maxFileSize bytes
func NewDocumentFetcher(maxFileSize int64, logger domain.Logger) *DocumentFetcher {
	return &DocumentFetcher{
		// No client timeout: extraction fetches are bounded only by the caller's context.
		// Bodies are returned byte for byte; a charset in the Content-Type must not transcode them.
		client: req.C().
			SetUserAgent("pdf-text-extractor/1.0").
			DisableAutoDecode().
			SetTimeout(0),
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Fetch downloads url and returns the response body.
// A content type other than PDF is not an error; some hosts, Drive included,
// misreport it and the extractor is the one that validates the payload.
func (f *DocumentFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		DisableAutoReadResponse().
		Get(url)
	if err != nil {
		return nil, apperrors.NewDownloadError(err)
	}
	defer resp.Body.Close()

	if !resp.IsSuccessState() {
		return nil, apperrors.NewDownloadError(fmt.Errorf("unexpected status %s for url %s", resp.GetStatus(), url))
	}

	if resp.ContentLength > f.maxFileSize {
		return nil, apperrors.NewDownloadError(f.tooLarge())
	}

	contentType := resp.GetHeader("Content-Type")
	if !strings.Contains(contentType, "application/pdf") && !strings.HasSuffix(url, ".pdf") {
		f.logger.Debug("Response is not advertised as PDF, continuing", "url", url, "content_type", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxFileSize+1))
	if err != nil {
		return nil, apperrors.NewDownloadError(fmt.Errorf("read body: %w", err))
	}
	if int64(len(data)) > f.maxFileSize {
		return nil, apperrors.NewDownloadError(f.tooLarge())
	}

	f.logger.Debug("Document downloaded", "url", url, "size", humanize.Bytes(uint64(len(data))))
	return data, nil
}

// Status issues a GET against url, discards the body and returns the status code.
// Only transport failures are returned as errors.
func (f *DocumentFetcher) Status(ctx context.Context, url string) (int, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		DisableAutoReadResponse().
		Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxFileSize)); err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}
	return resp.GetStatusCode(), nil
}

func (f *DocumentFetcher) tooLarge() error {
	return fmt.Errorf("%w (limit %s)", domain.ErrFileTooLarge, humanize.Bytes(uint64(f.maxFileSize)))
}
