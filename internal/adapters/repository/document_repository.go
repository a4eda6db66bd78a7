package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
)

// DocumentRepository reads and writes whole documents on disk
type DocumentRepository struct{}

// NewDocumentRepository creates a new file-based document repository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// Ensure it implements the interface
var _ ports.DocumentRepository = (*DocumentRepository)(nil)

// Read returns the full content of the document at path
func (r *DocumentRepository) Read(ctx context.Context, path string) (string, error) {
	const op = "read_document"
	if err := precheck(ctx, op, path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NotFound(op, path)
		}
		return "", domain.IO(op, path, err)
	}
	return string(data), nil
}

// Write replaces the document content in one write
func (r *DocumentRepository) Write(ctx context.Context, path, content string) error {
	const op = "write_document"
	if err := precheck(ctx, op, path); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return domain.IO(op, path, err)
	}
	logging.Debug("Workspace", "saved document %s (%d bytes)", path, len(content))
	return nil
}

// Create writes an empty document, failing if anything occupies path.
// O_EXCL makes the existence check and the create a single step.
func (r *DocumentRepository) Create(ctx context.Context, path string) error {
	const op = "create_document"
	if err := precheck(ctx, op, path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.AlreadyExists(op, path)
		}
		return domain.IO(op, path, err)
	}
	if err := f.Close(); err != nil {
		return domain.IO(op, path, err)
	}

	logging.Debug("Workspace", "created document %s", path)
	return nil
}

// ReadDir lists the entries directly inside dir
func (r *DocumentRepository) ReadDir(ctx context.Context, dir string) ([]domain.Entry, error) {
	const op = "list_directory"
	if err := precheck(ctx, op, dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NotFound(op, dir)
		}
		return nil, domain.IO(op, dir, err)
	}

	result := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domain.Entry{
			Name:  entry.Name(),
			Path:  filepath.Join(dir, entry.Name()),
			IsDir: entry.IsDir(),
		})
	}
	return result, nil
}
