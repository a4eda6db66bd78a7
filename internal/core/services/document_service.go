package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/slides"
	"github.com/mdslide/mdslide/pkg/workspace"
)

// DocumentService opens, saves and manages slide documents
type DocumentService struct {
	docs    ports.DocumentRepository
	mutator ports.WorkspaceMutator
}

// NewDocumentService creates a new document service
func NewDocumentService(docs ports.DocumentRepository, mutator ports.WorkspaceMutator) *DocumentService {
	return &DocumentService{
		docs:    docs,
		mutator: mutator,
	}
}

// Open reads a document. Images are reported but not read.
func (s *DocumentService) Open(ctx context.Context, path string) (*domain.Document, error) {
	if domain.IsImagePath(path) {
		exists, err := s.mutator.Exists(ctx, path)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.NotFound("open_document", path)
		}
		return &domain.Document{Path: path, IsImage: true}, nil
	}

	content, err := s.docs.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return &domain.Document{Path: path, Content: content}, nil
}

// Outline splits a document into its slides
func (s *DocumentService) Outline(ctx context.Context, path string) ([]slides.Slide, error) {
	content, err := s.docs.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return slides.Parse(content), nil
}

// Save replaces the document content
func (s *DocumentService) Save(ctx context.Context, path, content string) error {
	return s.docs.Write(ctx, path, content)
}

// Create writes a new empty document in dir named after now, and returns its path.
// It never overwrites: a name collision is an AlreadyExists error.
func (s *DocumentService) Create(ctx context.Context, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, domain.GenerateDocumentName(now))
	if err := s.docs.Create(ctx, path); err != nil {
		return "", err
	}

	logging.Info("Documents", "created %s", path)
	return path, nil
}

// Delete removes path. With withAssets, the document's asset directory goes too.
func (s *DocumentService) Delete(ctx context.Context, path string, withAssets bool) error {
	// Resolve the asset directory first so a bad path fails before anything is removed
	var assetDir string
	if withAssets {
		dir, err := workspace.AssetDirFor(path)
		if err != nil {
			return err
		}
		assetDir = dir
	}

	if err := s.mutator.Delete(ctx, path); err != nil {
		return err
	}

	if assetDir == "" {
		return nil
	}

	exists, err := s.mutator.Exists(ctx, assetDir)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := s.mutator.Delete(ctx, assetDir); err != nil {
		return fmt.Errorf("document deleted but assets remain: %w", err)
	}

	logging.Info("Documents", "deleted %s with assets", path)
	return nil
}

// Rename renames oldPath to newName within the same parent directory and
// returns the new path. With withAssets, the asset directory follows the new stem.
func (s *DocumentService) Rename(ctx context.Context, oldPath, newName string, withAssets bool) (string, error) {
	if err := workspace.ValidateComponent("rename", newName); err != nil {
		return "", err
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if err := s.Move(ctx, oldPath, newPath, withAssets); err != nil {
		return "", err
	}
	return newPath, nil
}

// Move renames oldPath to newPath, which may be in another directory.
// With withAssets, <old parent>/<old stem> moves to <new parent>/<new stem>.
func (s *DocumentService) Move(ctx context.Context, oldPath, newPath string, withAssets bool) error {
	var oldAssets, newAssets string
	if withAssets {
		var err error
		if oldAssets, err = workspace.AssetDirFor(oldPath); err != nil {
			return err
		}
		if newAssets, err = workspace.AssetDirFor(newPath); err != nil {
			return err
		}
	}

	// Both targets are checked before anything moves
	moveAssets := false
	if oldAssets != "" && oldAssets != newAssets {
		exists, err := s.mutator.Exists(ctx, oldAssets)
		if err != nil {
			return err
		}
		if exists {
			taken, err := s.mutator.Exists(ctx, newAssets)
			if err != nil {
				return err
			}
			if taken {
				return domain.AlreadyExists("rename", newAssets)
			}
			moveAssets = true
		}
	}

	if err := s.mutator.Rename(ctx, oldPath, newPath); err != nil {
		return err
	}
	if !moveAssets {
		return nil
	}

	if err := s.mutator.Rename(ctx, oldAssets, newAssets); err != nil {
		return fmt.Errorf("document renamed but assets were not moved: %w", err)
	}

	logging.Info("Documents", "moved %s -> %s with assets", oldPath, newPath)
	return nil
}
