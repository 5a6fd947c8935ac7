package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/go-fitz"
)

const (
	defaultPageTimeout = 90 * time.Second
	// PDF readers accept a header anywhere in the first kilobyte.
	pdfHeaderWindow = 1024
)

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	logger      domain.Logger
	pageTimeout time.Duration
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{
		logger:      logger,
		pageTimeout: defaultPageTimeout,
	}
}

// ExtractText returns the text of every page, in page order, joined by newlines.
// Pages that fail or time out contribute an empty segment.
func (p *PDFProcessor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewExtractionError(domain.ErrEmptyDocument)
	}
	if !isPDF(data) {
		return "", apperrors.NewExtractionError(fmt.Errorf("%w (detected %s)", domain.ErrNotPDF, mimetype.Detect(data).String()))
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError(fmt.Errorf("failed to open PDF: %w", err))
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages <= 0 {
		return "", apperrors.NewExtractionError(errors.New("document has no pages"))
	}

	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		sb.WriteString(p.pageText(doc, pageNum, numPages))
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

// pageText extracts one page, giving up after the page timeout
func (p *PDFProcessor) pageText(doc *fitz.Document, pageNum, numPages int) string {
	type pageResult struct {
		text string
		err  error
	}

	resultCh := make(chan pageResult, 1)
	go func() {
		t, e := doc.Text(pageNum)
		resultCh <- pageResult{text: t, err: e}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", res.err)
			return ""
		}
		return sanitizeText(strings.TrimSpace(res.text))
	case <-time.After(p.pageTimeout):
		p.logger.Warn("PDF page extraction timeout; using empty page", "page", pageNum+1, "total", numPages, "timeout_sec", int(p.pageTimeout.Seconds()))
		return ""
	}
}

func isPDF(data []byte) bool {
	if mimetype.Detect(data).Is("application/pdf") {
		return true
	}
	head := data
	if len(head) > pdfHeaderWindow {
		head = head[:pdfHeaderWindow]
	}
	return bytes.Contains(head, []byte("%PDF-"))
}

// sanitizeText drops NUL and other control characters (keeping tab, newline
// and carriage return) and replaces invalid UTF-8 so the text encodes cleanly as JSON.
func sanitizeText(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			continue
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
