package domain

import (
	"testing"
	"time"
)

func TestEntryKinds(t *testing.T) {
	tests := []struct {
		entry    Entry
		image    bool
		document bool
	}{
		{Entry{Name: "a.md"}, false, true},
		{Entry{Name: "A.PNG"}, true, false},
		{Entry{Name: "x.svg"}, true, false},
		{Entry{Name: "notes.txt"}, false, false},
		{Entry{Name: "deck.md", IsDir: true}, false, false},
		{Entry{Name: "pics.png", IsDir: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.entry.Name, func(t *testing.T) {
			if got := tt.entry.IsImage(); got != tt.image {
				t.Errorf("IsImage() = %v, want %v", got, tt.image)
			}
			if got := tt.entry.IsDocument(); got != tt.document {
				t.Errorf("IsDocument() = %v, want %v", got, tt.document)
			}
		})
	}
}

func TestGenerateDocumentName(t *testing.T) {
	now := time.Date(2025, 11, 28, 14, 15, 3, 0, time.UTC)
	if got := GenerateDocumentName(now); got != "20251128-141503.md" {
		t.Errorf("GenerateDocumentName() = %q", got)
	}
}
