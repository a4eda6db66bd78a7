package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"

	"github.com/mdslide/mdslide/pkg/config"
)

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"document write", fsnotify.Event{Name: "/ws/talk.md", Op: fsnotify.Write}, true},
		{"image create", fsnotify.Event{Name: "/ws/talk/a.PNG", Op: fsnotify.Create}, true},
		{"folder create", fsnotify.Event{Name: "/ws/drafts", Op: fsnotify.Create}, true},
		{"hidden file", fsnotify.Event{Name: "/ws/.talk.md.swp", Op: fsnotify.Write}, false},
		{"backup file", fsnotify.Event{Name: "/ws/talk.md~", Op: fsnotify.Create}, false},
		{"lock file", fsnotify.Event{Name: "/ws/~talk.md", Op: fsnotify.Create}, false},
		{"chmod only", fsnotify.Event{Name: "/ws/talk.md", Op: fsnotify.Chmod}, false},
		{"other type", fsnotify.Event{Name: "/ws/notes.txt", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevantEvent(tt.event); got != tt.want {
				t.Errorf("relevantEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestFormatEvent(t *testing.T) {
	root := t.TempDir()
	prev := appConfig
	appConfig = config.DefaultConfig(root)
	appConfig.WorkspacePath = root
	t.Cleanup(func() { appConfig = prev })

	tests := []struct {
		op     fsnotify.Op
		marker string
	}{
		{fsnotify.Create, "+"},
		{fsnotify.Remove, "-"},
		{fsnotify.Rename, "→"},
		{fsnotify.Write, "~"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := formatEvent(fsnotify.Event{Name: filepath.Join(root, "talk.md"), Op: tt.op})
			if !strings.Contains(got, tt.marker) || !strings.HasSuffix(got, "talk.md") {
				t.Errorf("formatEvent = %q, want marker %q and relative name", got, tt.marker)
			}
			if strings.Contains(got, root) {
				t.Errorf("expected a workspace-relative name, got %q", got)
			}
		})
	}
}

func TestAddTree(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"decks/2025", ".git/objects"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()

	if err := addTree(watcher, root); err != nil {
		t.Fatalf("addTree failed: %v", err)
	}

	watched := map[string]bool{}
	for _, p := range watcher.WatchList() {
		watched[p] = true
	}
	for _, want := range []string{root, filepath.Join(root, "decks"), filepath.Join(root, "decks", "2025")} {
		if !watched[want] {
			t.Errorf("expected %s to be watched", want)
		}
	}
	if watched[filepath.Join(root, ".git")] {
		t.Error("hidden folders should not be watched")
	}

	if err := addTree(watcher, filepath.Join(root, "missing")); err == nil {
		t.Error("expected error for a missing folder")
	}
}
