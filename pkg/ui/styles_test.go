package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mdslide/mdslide/internal/core/domain"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", ThemeAuto, false},
		{"auto", ThemeAuto, false},
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{"solarized", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTheme(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatErr(t *testing.T) {
	if got := FormatErr(nil); got != "" {
		t.Errorf("FormatErr(nil) = %q", got)
	}

	got := FormatErr(domain.NotFound("rename", "/ws/a.md"))
	if !strings.Contains(got, IconError+" rename /ws/a.md: not found") {
		t.Errorf("FormatErr = %q", got)
	}
	if strings.Count(got, "not found") != 1 {
		t.Errorf("kind should appear once: %q", got)
	}

	if got := FormatErr(errors.New("boom")); !strings.Contains(got, "boom") {
		t.Errorf("FormatErr = %q", got)
	}
}

func TestEntryIcon(t *testing.T) {
	tests := []struct {
		entry domain.Entry
		want  string
	}{
		{domain.Entry{Name: "talk", IsDir: true}, IconFolder},
		{domain.Entry{Name: "a.PNG"}, IconImage},
		{domain.Entry{Name: "talk.md"}, IconDocument},
	}

	for _, tt := range tests {
		if got := EntryIcon(tt.entry); got != tt.want {
			t.Errorf("EntryIcon(%s) = %q, want %q", tt.entry.Name, got, tt.want)
		}
	}
}
