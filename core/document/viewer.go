package document

import (
	"errors"
	"strings"
)

// The core never renders documents. It only classifies them so an external
// viewer knows whether to paginate (pdf family) or flow-render (word
// family) the byte buffer it is handed.

// Kind is the viewer family of a document.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindWord Kind = "word"
)

// ErrUnsupportedFormat signals a document outside the pdf/word families.
// Callers are expected to offer a raw-download fallback.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Classify picks the viewer family from the file name and MIME hint.
func Classify(name, mimeType string) (Kind, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pdf") || mimeType == "application/pdf":
		return KindPDF, nil
	case strings.HasSuffix(lower, ".docx") || strings.HasSuffix(lower, ".doc") ||
		strings.Contains(mimeType, "wordprocessing"):
		return KindWord, nil
	}
	return "", ErrUnsupportedFormat
}
