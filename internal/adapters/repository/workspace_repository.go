package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
)

const dirPerm = 0755

// WorkspaceRepository mutates the workspace tree on the local filesystem.
// It holds no state: the filesystem is the only source of truth.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a new filesystem-backed mutator
func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{}
}

// Ensure it implements the interface
var _ ports.WorkspaceMutator = (*WorkspaceRepository)(nil)

// EnsureDirectory is a no-op when path exists, otherwise creates the full chain
func (r *WorkspaceRepository) EnsureDirectory(ctx context.Context, path string) error {
	const op = "ensure_directory"
	if err := precheck(ctx, op, path); err != nil {
		return err
	}

	exists, err := lexists(op, path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := os.MkdirAll(path, dirPerm); err != nil {
		return domain.IO(op, path, err)
	}
	logging.Debug("Workspace", "created directory %s", path)
	return nil
}

// CreateDirectory creates the full chain, failing if anything occupies path
func (r *WorkspaceRepository) CreateDirectory(ctx context.Context, path string) error {
	const op = "create_directory"
	if err := precheck(ctx, op, path); err != nil {
		return err
	}

	exists, err := lexists(op, path)
	if err != nil {
		return err
	}
	if exists {
		return domain.AlreadyExists(op, path)
	}

	if err := os.MkdirAll(path, dirPerm); err != nil {
		return domain.IO(op, path, err)
	}
	logging.Debug("Workspace", "created directory %s", path)
	return nil
}

// Rename moves oldPath to newPath. Files and directories alike; never overwrites.
func (r *WorkspaceRepository) Rename(ctx context.Context, oldPath, newPath string) error {
	const op = "rename"
	if err := precheck(ctx, op, oldPath); err != nil {
		return err
	}
	if newPath == "" {
		return domain.InvalidPath(op, newPath, "empty path")
	}

	exists, err := lexists(op, oldPath)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound(op, oldPath)
	}

	exists, err = lexists(op, newPath)
	if err != nil {
		return err
	}
	if exists {
		return domain.AlreadyExists(op, newPath)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return domain.IO(op, oldPath, err)
	}
	logging.Debug("Workspace", "renamed %s -> %s", oldPath, newPath)
	return nil
}

// Delete removes path: recursively for directories, a single unlink otherwise
func (r *WorkspaceRepository) Delete(ctx context.Context, path string) error {
	const op = "delete"
	if err := precheck(ctx, op, path); err != nil {
		return err
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NotFound(op, path)
		}
		return domain.IO(op, path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return domain.IO(op, path, err)
	}

	logging.Debug("Workspace", "deleted %s", path)
	return nil
}

// Exists reports whether anything occupies path
func (r *WorkspaceRepository) Exists(ctx context.Context, path string) (bool, error) {
	const op = "exists"
	if err := precheck(ctx, op, path); err != nil {
		return false, err
	}
	return lexists(op, path)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func precheck(ctx context.Context, op, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return domain.InvalidPath(op, path, "empty path")
	}
	return nil
}

// lexists checks path without following a final symlink, so a dangling link still counts
func lexists(op, path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, domain.IO(op, path, err)
}
