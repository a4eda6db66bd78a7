// Package slides splits markdown decks into slides and finds the images they embed.
package slides

import (
	"regexp"
	"strings"
)

var (
	// A line holding exactly "---" separates two slides; CRLF files included
	separatorPattern = regexp.MustCompile(`(?m)^---\r?$`)

	// Match markdown images: ![alt](src) or ![alt](src "title")
	imagePattern = regexp.MustCompile(`!\[[^\]]*\]\(\s*([^)\s]+)(?:\s+"[^"]*")?\s*\)`)

	// Match the first ATX heading: "# Title", "## Title"
	headingPattern = regexp.MustCompile(`(?m)^#{1,6}\s+(.+?)\s*#*\s*$`)
)

// Slide is one section of a deck
type Slide struct {
	Index   int
	Title   string
	Content string
	Images  []string
}

// Split breaks content on separator lines and trims each slide
func Split(content string) []string {
	parts := separatorPattern.Split(content, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Parse splits content and extracts each slide's title and local images
func Parse(content string) []Slide {
	parts := Split(content)
	result := make([]Slide, len(parts))
	for i, p := range parts {
		result[i] = Slide{
			Index:   i,
			Title:   Title(p),
			Content: p,
			Images:  LocalImages(p),
		}
	}
	return result
}

// Count returns the number of slides in content
func Count(content string) int {
	return len(separatorPattern.FindAllStringIndex(content, -1)) + 1
}

// IndexAtCursor returns the slide holding byte offset pos
func IndexAtCursor(content string, pos int) int {
	index := 0
	for _, loc := range separatorPattern.FindAllStringIndex(content, -1) {
		if pos <= loc[0] {
			break
		}
		index++
	}
	return index
}

// StartPosition returns the offset where slide index begins, past the
// separator and any whitespace after it. Unknown indexes yield 0.
func StartPosition(content string, index int) int {
	if index <= 0 {
		return 0
	}

	locs := separatorPattern.FindAllStringIndex(content, -1)
	if index > len(locs) {
		return 0
	}

	start := locs[index-1][1]
	rest := content[start:]
	return start + len(rest) - len(strings.TrimLeft(rest, " \t\r\n"))
}

// Title returns the first heading of a slide, or ""
func Title(slide string) string {
	if m := headingPattern.FindStringSubmatch(slide); m != nil {
		return m[1]
	}
	return ""
}

// Images returns every image source in content, in order
func Images(content string) []string {
	matches := imagePattern.FindAllStringSubmatch(content, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// LocalImages returns the image sources that point at workspace files:
// no URLs, data URIs or asset: links
func LocalImages(content string) []string {
	var refs []string
	for _, src := range Images(content) {
		if isRemote(src) {
			continue
		}
		refs = append(refs, src)
	}
	return refs
}

func isRemote(src string) bool {
	for _, prefix := range []string{"http:", "https:", "data:", "asset:"} {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}
