package errors

import (
	"errors"
)

// a Drive link was recognised but no file identifier could be recovered from it
var ErrInvalidReferenceFormat = errors.New("invalid Google Drive link format")

// network, transport or write failure while retrieving a remote document
var ErrFetchFailed = errors.New("fetch failed")

// the resolved local path does not exist at extraction time
var ErrFileNotFound = errors.New("file not found")

// extension is neither .pdf nor .docx
var ErrUnsupportedFormat = errors.New("unsupported file format")

// the document exists and has a supported extension but could not be parsed
var ErrExtractionFailed = errors.New("extraction failed")
