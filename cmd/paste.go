package cmd

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/ui"
)

var (
	pasteName string
	pasteExt  string
	pasteCopy bool
)

var pasteCmd = &cobra.Command{
	Use:   "paste [DOC] [FILE]",
	Short: "Store an image next to a document",
	Long: `Store image bytes in the document's asset folder and print the markdown
snippet that embeds them.

For talk.md the image lands in talk/<name>.<ext> and is referenced as
"talk/<name>.<ext>". Pasting the same name again replaces the file.

Bytes are read from FILE, or from stdin when FILE is "-" or missing.
Without DOC, pick a document with the fuzzy finder.

Examples:
  mdslide paste talk.md ~/Desktop/diagram.png
  xclip -o -t image/png | mdslide paste talk.md --name chart
  mdslide paste talk.md shot.jpg --copy`,
	Args: cobra.MaximumNArgs(2),
	RunE: runPaste,
}

func init() {
	pasteCmd.Flags().StringVarP(&pasteName, "name", "n", "", "Asset name without extension (default: generated)")
	pasteCmd.Flags().StringVarP(&pasteExt, "ext", "e", "", "Extension of the stored file (default: FILE's, or png for stdin)")
	pasteCmd.Flags().BoolVarP(&pasteCopy, "copy", "c", false, "Copy the markdown snippet to the clipboard")
}

func runPaste(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// 1. Resolve document
	docPath, err := documentArg(args)
	if err != nil {
		if cancelled(err) {
			return nil
		}
		return err
	}

	// 2. Store bytes
	var asset *domain.PastedAsset
	if len(args) > 1 && args[1] != "-" {
		asset, err = assetService.ImportFile(ctx, docPath, resolveSource(args[1]), pasteName, pasteExt)
	} else {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return domain.IO("read_stdin", "-", readErr)
		}
		asset, err = assetService.SavePastedAsset(ctx, docPath, pasteName, data, pasteExt)
	}
	if err != nil {
		return err
	}

	// 3. Report snippet
	snippet := domain.MarkdownImage(asset.RelativePath)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatSuccess("Asset stored: "+relativeToWorkspace(asset.AbsolutePath)))
	fmt.Fprintln(out, ui.FormatBold(snippet))

	if pasteCopy {
		if err := clipboard.WriteAll(snippet); err != nil {
			fmt.Fprintln(out, ui.FormatMuted("(Clipboard access failed, please copy manually)"))
		} else {
			fmt.Fprintln(out, ui.FormatMuted("(Copied to clipboard)"))
		}
	}

	return nil
}
