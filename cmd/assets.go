package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/slides"
	"github.com/mdslide/mdslide/pkg/ui"
	"github.com/mdslide/mdslide/pkg/workspace"
)

var assetsCmd = &cobra.Command{
	Use:   "assets [DOC]",
	Short: "List the images stored for a document",
	Long: `List the files in a document's asset folder together with the
markdown reference for each one, and whether the document still embeds it.

Without DOC, pick a document with the fuzzy finder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	docPath, err := documentArg(args)
	if err != nil {
		if cancelled(err) {
			return nil
		}
		return err
	}

	stem, err := workspace.Stem(docPath)
	if err != nil {
		return err
	}

	assets, err := assetService.ListAssets(ctx, docPath)
	if err != nil {
		return err
	}

	// Mark which assets the document still embeds
	var refs []string
	used := make(map[string]bool)
	if doc, err := documentService.Open(ctx, docPath); err == nil {
		refs = slides.LocalImages(doc.Content)
		for _, ref := range refs {
			used[ref] = true
		}
	}

	out := cmd.OutOrStdout()
	if len(assets) == 0 {
		fmt.Fprintln(out, ui.FormatWarning("No assets for "+relativeToWorkspace(docPath)))
	} else {
		printAssetTable(out, docPath, stem, assets, used)
	}

	// References whose file is gone
	stored := make(map[string]bool, len(assets))
	for _, a := range assets {
		stored[stem+"/"+a.Name] = true
	}
	var broken []string
	for _, ref := range refs {
		if strings.HasPrefix(ref, stem+"/") && !stored[ref] {
			broken = append(broken, ref)
		}
	}
	if len(broken) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.FormatWarning("Referenced but missing:"))
		fmt.Fprint(out, ui.RenderSimpleList(broken))
	}
	return nil
}

func printAssetTable(out io.Writer, docPath, stem string, assets []domain.Entry, used map[string]bool) {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "FILE"},
		{Header: "SIZE", Align: "right"},
		{Header: "REFERENCE"},
		{Header: "USED"},
	})
	for _, a := range assets {
		size := "-"
		if info, err := os.Stat(a.Path); err == nil {
			size = formatSize(info.Size())
		}
		ref := stem + "/" + a.Name
		mark := "no"
		if used[ref] {
			mark = "yes"
		}
		table.AddRow(a.Name, size, ref, mark)
	}

	fmt.Fprintln(out, ui.FormatTitle(relativeToWorkspace(docPath)))
	fmt.Fprint(out, table.Render())
}

// formatSize renders a byte count the way ls -h does
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}
