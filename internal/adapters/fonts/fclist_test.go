package fonts

import (
	"reflect"
	"testing"
)

func TestParseFamilies(t *testing.T) {
	output := "DejaVu Sans,DejaVu Sans Light\n" +
		"Noto Sans Mono\n" +
		"\n" +
		"JetBrains Mono, JetBrains Mono ExtraBold \n" +
		"Source Code Pro\\-Black\n"

	got := ParseFamilies(output)
	want := []string{
		"DejaVu Sans",
		"DejaVu Sans Light",
		"Noto Sans Mono",
		"JetBrains Mono",
		"JetBrains Mono ExtraBold",
		"Source Code Pro-Black",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFamilies() = %q, want %q", got, want)
	}
}

func TestParseFamilies_Empty(t *testing.T) {
	if got := ParseFamilies(""); len(got) != 0 {
		t.Errorf("expected no families, got %q", got)
	}
}
