package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [DIR]",
	Short: "Print workspace changes as they happen",
	Long: `Watch the workspace for created, changed, renamed and deleted
documents, images and folders, and print each change.

New folders are watched as they appear. Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt)
	defer stop()

	dir := dirArg(args)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, dir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatInfo("Watching: "+dir))
	fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Fprintln(out)

	return watchLoop(ctx, watcher, out)
}

// watchLoop prints events until ctx is done or the watcher closes
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out io.Writer) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}

			// Follow new folders
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						logging.Warn("Watch", "cannot watch %s: %v", event.Name, err)
					}
				}
			}

			fmt.Fprintln(out, formatEvent(event))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("Watch", err, "watcher error")

		case <-ctx.Done():
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.FormatMuted("Watch stopped"))
			return nil
		}
	}
}

// addTree watches dir and every folder below it
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return domain.NotFound("watch", dir)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return domain.IO("watch", path, err)
		}
		return nil
	})
}

// relevantEvent skips editor temp files and types the tree does not show
func relevantEvent(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") || strings.HasSuffix(base, "~") {
		return false
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	if domain.IsDocumentPath(base) || domain.IsImagePath(base) {
		return true
	}
	// Extensionless names are usually folders
	return filepath.Ext(base) == ""
}

func formatEvent(event fsnotify.Event) string {
	name := relativeToWorkspace(event.Name)
	switch {
	case event.Has(fsnotify.Create):
		return ui.StyleSuccess.Render("+ ") + name
	case event.Has(fsnotify.Remove):
		return ui.StyleError.Render("- ") + name
	case event.Has(fsnotify.Rename):
		return ui.StyleWarning.Render("→ ") + name
	default:
		return ui.StyleInfo.Render("~ ") + name
	}
}
