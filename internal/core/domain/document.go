package domain

import (
	"time"
)

// documentNameLayout yields names like "20251128-141503.md"
const documentNameLayout = "20060102-150405"

// Document is an opened workspace file
type Document struct {
	Path    string
	Content string
	IsImage bool // Images are not read; Content stays empty
}

// GenerateDocumentName creates a timestamped file name for a new document
func GenerateDocumentName(now time.Time) string {
	return now.Format(documentNameLayout) + DocumentExtension
}
