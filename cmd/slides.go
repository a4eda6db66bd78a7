package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/pkg/slides"
	"github.com/mdslide/mdslide/pkg/ui"
)

var (
	slidesShow int
	slidesAt   int
)

var slidesCmd = &cobra.Command{
	Use:   "slides [DOC]",
	Short: "List the slides of a document",
	Long: `List each slide of a document with its title and image count.
Slides are separated by lines holding only "---".

With --show N, print slide N (1-based) with syntax highlighting instead.
With --at LINE, print which slide holds that line of the file.
Without DOC, pick a document with the fuzzy finder.

Examples:
  mdslide slides talk.md
  mdslide slides talk.md --show 2
  mdslide slides talk.md --at 40`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlides,
}

func init() {
	slidesCmd.Flags().IntVarP(&slidesShow, "show", "s", 0, "Print one slide")
	slidesCmd.Flags().IntVar(&slidesAt, "at", 0, "Find the slide holding this line")
}

func runSlides(cmd *cobra.Command, args []string) error {
	docPath, err := documentArg(args)
	if err != nil {
		if cancelled(err) {
			return nil
		}
		return err
	}

	ctx := getContext()
	out := cmd.OutOrStdout()

	if slidesShow != 0 || slidesAt != 0 {
		doc, err := documentService.Open(ctx, docPath)
		if err != nil {
			return err
		}
		deck := slides.Parse(doc.Content)

		if slidesAt != 0 {
			offset, ok := lineOffset(doc.Content, slidesAt)
			if !ok {
				return fmt.Errorf("line %d out of range (1-%d)", slidesAt, strings.Count(doc.Content, "\n")+1)
			}
			s := deck[slides.IndexAtCursor(doc.Content, offset)]
			fmt.Fprintf(out, "Line %d is on slide %d of %d: %s\n", slidesAt, s.Index+1, len(deck), slideTitle(s))
			return nil
		}

		if slidesShow < 1 || slidesShow > len(deck) {
			return fmt.Errorf("slide %d out of range (1-%d)", slidesShow, len(deck))
		}
		start := slides.StartPosition(doc.Content, slidesShow-1)
		line := strings.Count(doc.Content[:start], "\n") + 1
		fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("Slide %d of %d, line %d", slidesShow, len(deck), line)))
		fmt.Fprintln(out, ui.HighlightMarkdown(deck[slidesShow-1].Content))
		return nil
	}

	outline, err := documentService.Outline(ctx, docPath)
	if err != nil {
		return err
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Align: "right"},
		{Header: "TITLE"},
		{Header: "IMAGES", Align: "right"},
	})
	for _, s := range outline {
		table.AddRow(strconv.Itoa(s.Index+1), slideTitle(s), strconv.Itoa(len(s.Images)))
	}

	fmt.Fprintln(out, ui.FormatTitle(relativeToWorkspace(docPath)))
	fmt.Fprint(out, table.Render())
	return nil
}

func slideTitle(s slides.Slide) string {
	if s.Title == "" {
		return "(untitled)"
	}
	return s.Title
}

// lineOffset returns the byte offset where 1-based line starts
func lineOffset(content string, line int) (int, bool) {
	if line < 1 {
		return 0, false
	}
	offset := 0
	for i := 1; i < line; i++ {
		next := strings.IndexByte(content[offset:], '\n')
		if next < 0 {
			return 0, false
		}
		offset += next + 1
	}
	return offset, true
}
