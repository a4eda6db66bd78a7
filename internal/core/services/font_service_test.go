package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/mdslide/mdslide/internal/core/ports/mocks"
)

func TestFontService_List_MergesAndSorts(t *testing.T) {
	source := mocks.NewMockFontSource("Fira Code", "Menlo", "DejaVu Sans", "Fira Code")
	svc := NewFontService(source)

	got := svc.List(context.Background())
	want := []string{"Consolas", "DejaVu Sans", "Fira Code", "JetBrains Mono", "Menlo", "Monaco", "monospace"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if source.GetCalls() != 1 {
		t.Errorf("expected one query, got %d", source.GetCalls())
	}
}

func TestFontService_List_FallsBackOnFailure(t *testing.T) {
	source := mocks.NewMockFontSource("Fira Code")
	source.SetShouldFail(true, nil)
	svc := NewFontService(source)

	got := svc.List(context.Background())
	want := []string{"Consolas", "JetBrains Mono", "Menlo", "Monaco", "monospace"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestFontService_List_NoInstalledFonts(t *testing.T) {
	svc := NewFontService(mocks.NewMockFontSource())

	if got := svc.List(context.Background()); len(got) != len(PreferredFonts) {
		t.Errorf("expected only preferred fonts, got %v", got)
	}
}
