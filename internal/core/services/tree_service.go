package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
)

// Unlimited expands the whole tree in Walk
const Unlimited = -1

// TreeService lists the workspace the way the editor sidebar shows it
type TreeService struct {
	docs ports.DocumentRepository
}

// NewTreeService creates a new tree service
func NewTreeService(docs ports.DocumentRepository) *TreeService {
	return &TreeService{
		docs: docs,
	}
}

// List returns one level of dir: directories, documents and images only,
// directories first, then by name
func (s *TreeService) List(ctx context.Context, dir string) ([]domain.Entry, error) {
	entries, err := s.docs.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir || entry.IsDocument() || entry.IsImage() {
			visible = append(visible, entry)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsDir != visible[j].IsDir {
			return visible[i].IsDir
		}
		return visible[i].Name < visible[j].Name
	})

	return visible, nil
}

// Walk lists dir and expands subdirectories up to depth levels.
// A depth of 0 behaves like List; any negative depth expands everything.
func (s *TreeService) Walk(ctx context.Context, dir string, depth int) ([]domain.Entry, error) {
	entries, err := s.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return entries, nil
	}

	next := depth - 1
	if depth < 0 {
		next = Unlimited
	}

	for i := range entries {
		if !entries[i].IsDir {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		children, err := s.Walk(ctx, entries[i].Path, next)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", entries[i].Path, err)
		}
		entries[i].Children = children
	}

	return entries, nil
}

// Documents returns every markdown document under dir, depth first
func (s *TreeService) Documents(ctx context.Context, dir string) ([]domain.Entry, error) {
	tree, err := s.Walk(ctx, dir, Unlimited)
	if err != nil {
		return nil, err
	}

	var docs []domain.Entry
	var collect func(entries []domain.Entry)
	collect = func(entries []domain.Entry) {
		for _, e := range entries {
			if e.IsDir {
				collect(e.Children)
				continue
			}
			if e.IsDocument() {
				docs = append(docs, e)
			}
		}
	}
	collect(tree)

	return docs, nil
}

// Stats summarises the workspace contents
type Stats struct {
	Directories int
	Documents   int
	Images      int
}

// Count tallies directories, documents and images under dir
func (s *TreeService) Count(ctx context.Context, dir string) (*Stats, error) {
	tree, err := s.Walk(ctx, dir, Unlimited)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	var count func(entries []domain.Entry)
	count = func(entries []domain.Entry) {
		for _, e := range entries {
			switch {
			case e.IsDir:
				stats.Directories++
				count(e.Children)
			case e.IsDocument():
				stats.Documents++
			case e.IsImage():
				stats.Images++
			}
		}
	}
	count(tree)

	return stats, nil
}
