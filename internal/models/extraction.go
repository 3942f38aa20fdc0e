package models

import (
	"encoding/json"
)

type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourceLocal              // 1
	SourceURL                // 2
	SourceDrive              // 3
	SourceS3                 // 4
	SourceGCS                // 5
)

// ExtractRequest is the body accepted by POST /extract. FilePath is nil when
// the field is absent or null; an empty string is still a reference.
type ExtractRequest struct {
	FilePath *string `json:"file_path"`
}

type ExtractResponse struct {
	ExtractedContent string `json:"extracted_content"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (k SourceKind) String() string {
	switch k {
	case SourceLocal:
		return "local"
	case SourceURL:
		return "url"
	case SourceDrive:
		return "drive"
	case SourceS3:
		return "s3"
	case SourceGCS:
		return "gcs"
	default:
		return "unknown"
	}
}

func (k SourceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Remote reports whether documents of this kind are downloaded into a temp file.
func (k SourceKind) Remote() bool {
	switch k {
	case SourceURL, SourceDrive, SourceS3, SourceGCS:
		return true
	default:
		return false
	}
}
