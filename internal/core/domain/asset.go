package domain

import (
	"strings"

	"github.com/google/uuid"
)

// assetNameLength matches the identifiers the editor generates for pasted images
const assetNameLength = 12

// PastedAsset describes a binary blob stored in a document's asset directory
type PastedAsset struct {
	DocumentPath string `json:"document_path"`
	Name         string `json:"name"`      // Caller-supplied identifier, without extension
	Extension    string `json:"extension"` // Without the leading dot
	AbsolutePath string `json:"absolute_path"`
	RelativePath string `json:"relative_path"` // "<stem>/<name>.<ext>", for embedding
}

// FileName returns "<name>.<ext>"
func (a PastedAsset) FileName() string {
	return a.Name + "." + a.Extension
}

// MarkdownImage returns the markdown snippet that embeds ref
func MarkdownImage(ref string) string {
	return "![](" + ref + ")"
}

// NewAssetName generates a 12 character lowercase identifier for an unnamed paste
func NewAssetName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:assetNameLength]
}

// NormalizeExtension strips surrounding space and a leading dot.
// An empty extension defaults to "png", the clipboard image format.
func NormalizeExtension(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return "png"
	}
	return ext
}
