package gridtable

import (
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// ANSI SGR sequences and OSC 8 hyperlink wrappers take no cells on screen,
// so they are stripped before measuring.
var (
	sgrRE  = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\(B`)
	osc8RE = regexp.MustCompile(`\x1b\]8;;.*?\x1b\\(.*?)\x1b\]8;;\x1b\\`)
)

// displayWidth returns the number of terminal cells the string occupies.
func displayWidth(s string) int {
	if strings.IndexByte(s, 0x1b) >= 0 {
		s = sgrRE.ReplaceAllString(osc8RE.ReplaceAllString(s, "$1"), "")
	}
	return runewidth.StringWidth(s)
}

// maxLineWidth returns the widest display line of a possibly multi-line
// string.
func maxLineWidth(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := displayWidth(line); w > max {
			max = w
		}
	}
	return max
}

// wrapText wraps s to the given display width. Explicit line breaks are kept
// (empty lines included); each remaining segment wider than the target is
// greedily wrapped at word boundaries and, when breakOnHyphens is set, after
// in-word hyphens. A single token wider than the target is hard-split.
// Re-joining the result loses nothing but whitespace at the break points.
func wrapText(s string, width int, breakOnHyphens bool) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, seg := range strings.Split(s, "\n") {
		if displayWidth(seg) <= width {
			out = append(out, seg)
			continue
		}
		out = append(out, wrapSegment(seg, width, breakOnHyphens)...)
	}
	return out
}

func wrapSegment(seg string, width int, breakOnHyphens bool) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	pendingSpace := ""

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
		pendingSpace = ""
	}
	place := func(chunk, sep string) {
		w := displayWidth(chunk)
		sw := displayWidth(sep)
		if lineWidth > 0 && lineWidth+sw+w > width {
			flush()
			sep, sw = "", 0
		}
		if lineWidth == 0 && w > width {
			// Oversized token: hard-split at display cells.
			parts := hardSplit(chunk, width)
			for _, p := range parts[:len(parts)-1] {
				line.WriteString(p)
				flush()
			}
			last := parts[len(parts)-1]
			line.WriteString(last)
			lineWidth = displayWidth(last)
			return
		}
		line.WriteString(sep)
		line.WriteString(chunk)
		lineWidth += sw + w
	}

	// The segmenter returns punctuation and hyphens as their own tokens;
	// runs of non-whitespace tokens are coalesced back into one word so a
	// break can only happen at whitespace (or, optionally, after a
	// hyphen).
	var word strings.Builder
	emitWord := func() {
		if word.Len() == 0 {
			return
		}
		chunks := []string{word.String()}
		if breakOnHyphens {
			chunks = splitAfterHyphens(word.String())
		}
		word.Reset()
		for i, chunk := range chunks {
			if i == 0 {
				place(chunk, pendingSpace)
				pendingSpace = ""
			} else {
				place(chunk, "")
			}
		}
	}
	tokens := words.FromString(seg)
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) == "" {
			emitWord()
			// Whitespace is held back; it is dropped if the line
			// breaks here, and trimmed entirely at segment start.
			if lineWidth > 0 {
				pendingSpace += tok
			}
			continue
		}
		word.WriteString(tok)
	}
	emitWord()
	if lineWidth > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// hardSplit cuts s into pieces of at most width display cells, always
// advancing at least one rune.
func hardSplit(s string, width int) []string {
	var parts []string
	for s != "" {
		part := runewidth.Truncate(s, width, "")
		if part == "" {
			r := []rune(s)
			part = string(r[0])
		}
		parts = append(parts, part)
		s = s[len(part):]
	}
	return parts
}

// splitAfterHyphens keeps each hyphen with the text before it, so
// "well-known" wraps as "well-" / "known".
func splitAfterHyphens(tok string) []string {
	var chunks []string
	start := 0
	for i, r := range tok {
		if r == '-' && i+1 < len(tok) {
			chunks = append(chunks, tok[start:i+1])
			start = i + 1
		}
	}
	chunks = append(chunks, tok[start:])
	return chunks
}
