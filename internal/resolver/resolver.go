package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "resume-extractor/internal/errors"
	"resume-extractor/internal/models"
)

const (
	driveHost = "drive.google.com"

	// DefaultDriveDownloadURL is the direct-download endpoint for Drive file ids.
	DefaultDriveDownloadURL = "https://drive.google.com/uc"

	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
)

// Source is a classified file reference.
type Source struct {
	Kind        models.SourceKind
	Reference   string
	DownloadURL string
	Bucket      string
	Key         string

	// Ext is the extension used to pick an extractor. For remote sources it is
	// only a guess until the fetch completes.
	Ext string
}

func (s Source) Remote() bool {
	return s.Kind.Remote()
}

type Resolver struct {
	driveDownloadURL string
}

func New(driveDownloadURL string) *Resolver {
	if driveDownloadURL == "" {
		driveDownloadURL = DefaultDriveDownloadURL
	}
	return &Resolver{driveDownloadURL: driveDownloadURL}
}

// Resolve classifies ref. Drive links win over every other rule, then
// object-store URIs, then anything starting with "http"; the rest is a local path.
func (r *Resolver) Resolve(ref string) (Source, error) {

	if strings.Contains(ref, driveHost) {
		fileID, err := DriveFileID(ref)
		if err != nil {
			return Source{}, err
		}
		return Source{
			Kind:        models.SourceDrive,
			Reference:   ref,
			DownloadURL: r.driveDownloadURL + "?export=download&id=" + fileID,
			Ext:         GuessExtension(ref),
		}, nil
	}

	if kind, rest, ok := objectScheme(ref); ok {
		bucket, key, found := strings.Cut(rest, "/")
		if !found || bucket == "" || key == "" {
			return Source{}, fmt.Errorf("%w: object reference %q needs a bucket and a key", apperrors.ErrInvalidReferenceFormat, ref)
		}
		return Source{
			Kind:      kind,
			Reference: ref,
			Bucket:    bucket,
			Key:       key,
			Ext:       strings.ToLower(filepath.Ext(key)),
		}, nil
	}

	if strings.HasPrefix(ref, "http") {
		return Source{
			Kind:        models.SourceURL,
			Reference:   ref,
			DownloadURL: ref,
			Ext:         GuessExtension(ref),
		}, nil
	}

	return Source{
		Kind:      models.SourceLocal,
		Reference: ref,
		Ext:       strings.ToLower(filepath.Ext(ref)),
	}, nil
}

// DriveFileID pulls the file identifier out of a Drive sharing link. An id=
// parameter takes everything after it verbatim, trailing query parameters
// included; otherwise the segment following /d/ is used.
func DriveFileID(link string) (string, error) {
	var fileID string

	switch {
	case strings.Contains(link, "id="):
		_, fileID, _ = strings.Cut(link, "id=")
	case strings.Contains(link, "/d/"):
		_, rest, _ := strings.Cut(link, "/d/")
		fileID, _, _ = strings.Cut(rest, "/")
	default:
		return "", apperrors.ErrInvalidReferenceFormat
	}

	if fileID == "" {
		return "", fmt.Errorf("%w: empty file id in %q", apperrors.ErrInvalidReferenceFormat, link)
	}

	return fileID, nil
}

// GuessExtension looks for a format hint in the reference itself, before any
// network call is made.
func GuessExtension(ref string) string {
	lower := strings.ToLower(ref)
	switch {
	case strings.Contains(lower, "pdf"):
		return ExtPDF
	case strings.Contains(lower, "docx"):
		return ExtDOCX
	default:
		return ""
	}
}

// ExtensionForContentType maps a response Content-Type to an extension, or
// "" when the type says nothing useful.
func ExtensionForContentType(contentType string) string {
	switch {
	case strings.Contains(contentType, "pdf"):
		return ExtPDF
	case strings.Contains(contentType, "wordprocessingml.document"):
		return ExtDOCX
	default:
		return ""
	}
}

func objectScheme(ref string) (models.SourceKind, string, bool) {
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		return models.SourceS3, rest, true
	}
	if rest, ok := strings.CutPrefix(ref, "gs://"); ok {
		return models.SourceGCS, rest, true
	}
	return models.SourceUnknown, "", false
}
