package service

import (
	"context"
	"time"

	"pdf-text-extractor/internal/domain"
)

// ExtractionService downloads a document by URL and returns its text
type ExtractionService struct {
	resolver  domain.URLResolver
	fetcher   domain.DocumentFetcher
	extractor domain.TextExtractor
	logger    domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(
	resolver domain.URLResolver,
	fetcher domain.DocumentFetcher,
	extractor domain.TextExtractor,
	logger domain.Logger,
) *ExtractionService {
	return &ExtractionService{
		resolver:  resolver,
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger,
	}
}

// Extract runs resolve, fetch and extract in sequence and stops at the first error
func (s *ExtractionService) Extract(ctx context.Context, url string) (*domain.ExtractionResult, error) {
	start := time.Now()

	downloadURL, err := s.resolver.ResolveURL(url)
	if err != nil {
		return nil, err
	}
	if downloadURL != url {
		s.logger.Debug("Resolved Google Drive URL", "url", url, "download_url", downloadURL)
	}

	data, err := s.fetcher.Fetch(ctx, downloadURL)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Text extracted", "url", url, "chars", len(text), "duration_ms", time.Since(start).Milliseconds())

	return &domain.ExtractionResult{
		Text:    text,
		Status:  domain.StatusSuccess,
		Message: "Text extracted successfully",
	}, nil
}
