package services

import (
	"context"
	"sort"

	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
)

// PreferredFonts are always offered, installed or not
var PreferredFonts = []string{
	"JetBrains Mono",
	"Monaco",
	"Menlo",
	"Consolas",
	"monospace",
}

// FontService lists font families for the editor font picker
type FontService struct {
	source ports.FontSource
}

// NewFontService creates a new font service
func NewFontService(source ports.FontSource) *FontService {
	return &FontService{
		source: source,
	}
}

// List returns the preferred fonts merged with the installed families,
// deduplicated and sorted. It never fails: on a query error the preferred
// list is returned on its own.
func (s *FontService) List(ctx context.Context) []string {
	families, err := s.source.Families(ctx)
	if err != nil {
		logging.Warn("Fonts", "font query failed, using defaults: %v", err)
		families = nil
	}

	seen := make(map[string]bool, len(PreferredFonts)+len(families))
	fonts := make([]string, 0, len(PreferredFonts)+len(families))
	for _, list := range [][]string{PreferredFonts, families} {
		for _, name := range list {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			fonts = append(fonts, name)
		}
	}

	sort.Strings(fonts)
	return fonts
}
