package domain

import (
	"path/filepath"
	"strings"
)

// ImageExtensions lists the image types shown in the workspace tree
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".apng", ".bmp", ".webp", ".svg"}

// DocumentExtension is the extension of editable documents
const DocumentExtension = ".md"

// Entry is a file or directory in the workspace, identified by its absolute path
type Entry struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	IsDir    bool    `json:"is_directory"`
	Children []Entry `json:"children,omitempty"`
}

// IsImage reports whether the entry is an image file
func (e Entry) IsImage() bool {
	return !e.IsDir && IsImagePath(e.Name)
}

// IsDocument reports whether the entry is a markdown document
func (e Entry) IsDocument() bool {
	return !e.IsDir && IsDocumentPath(e.Name)
}

// IsImagePath checks the extension case-insensitively
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, img := range ImageExtensions {
		if ext == img {
			return true
		}
	}
	return false
}

// IsDocumentPath reports whether path names a markdown document
func IsDocumentPath(path string) bool {
	return filepath.Ext(path) == DocumentExtension
}
