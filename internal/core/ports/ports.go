package ports

import (
	"context"

	"github.com/mdslide/mdslide/internal/core/domain"
)

// WorkspaceMutator defines the port for validated filesystem mutations.
// Every method checks existence against storage immediately before acting.
type WorkspaceMutator interface {
	// EnsureDirectory creates the full chain unless path already exists
	EnsureDirectory(ctx context.Context, path string) error

	// CreateDirectory creates the full chain, failing if anything occupies path
	CreateDirectory(ctx context.Context, path string) error

	// Rename moves oldPath to newPath, never overwriting
	Rename(ctx context.Context, oldPath, newPath string) error

	// Delete removes a file, or a directory recursively
	Delete(ctx context.Context, path string) error

	// Exists reports whether anything occupies path
	Exists(ctx context.Context, path string) (bool, error)
}

// AssetWriter defines the port for storing pasted blobs
type AssetWriter interface {
	// Write ensures dir exists and writes data to dir/fileName, overwriting
	Write(ctx context.Context, dir, fileName string, data []byte) (string, error)

	// List returns the files in dir, or nothing if dir does not exist
	List(ctx context.Context, dir string) ([]domain.Entry, error)
}

// DocumentRepository defines the port for whole-file document access
type DocumentRepository interface {
	// Read returns the document content
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the document content
	Write(ctx context.Context, path, content string) error

	// Create writes a new empty document, failing if path exists
	Create(ctx context.Context, path string) error

	// ReadDir lists one level of dir
	ReadDir(ctx context.Context, dir string) ([]domain.Entry, error)
}

// FontSource defines the port for the OS font catalogue
type FontSource interface {
	// Families returns installed font family names
	Families(ctx context.Context) ([]string, error)
}
