package domain

import "errors"

// Domain errors
var (
	ErrDriveFileIDNotFound = errors.New("could not extract file ID from Google Drive URL")
	ErrEmptyDocument       = errors.New("document is empty")
	ErrNotPDF              = errors.New("document is not a PDF")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
