package domain

import (
	"strings"
	"testing"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"png", "png"},
		{".jpg", "jpg"},
		{" .gif ", "gif"},
		{"", "png"},
		{".", "png"},
		{"PNG", "PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeExtension(tt.in); got != tt.want {
				t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewAssetName(t *testing.T) {
	a := NewAssetName()
	b := NewAssetName()

	if len(a) != assetNameLength {
		t.Errorf("len = %d, want %d", len(a), assetNameLength)
	}
	if strings.ToLower(a) != a || strings.ContainsAny(a, "-./") {
		t.Errorf("unexpected characters in %q", a)
	}
	if a == b {
		t.Errorf("two generated names collided: %q", a)
	}
}

func TestPastedAssetFileName(t *testing.T) {
	a := PastedAsset{Name: "img1", Extension: "png"}
	if got := a.FileName(); got != "img1.png" {
		t.Errorf("FileName() = %q", got)
	}
	if got := MarkdownImage("doc/img1.png"); got != "![](doc/img1.png)" {
		t.Errorf("MarkdownImage() = %q", got)
	}
}
