package recipemd

import "strings"

const titlePrefix = "# "

// block is one candidate recipe span. start is the 1-based line number of
// its first line in the source document.
type block struct {
	start int
	lines []string
}

func (b block) text() string {
	return strings.Join(b.lines, "\n")
}

// splitLines normalizes line endings and strips trailing whitespace from
// every line. Leading whitespace is kept.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\f\v")
	}
	return lines
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isTitle(line string) bool {
	return strings.HasPrefix(line, titlePrefix)
}

// segment groups lines into blocks, opening a new block at every title line
// once the current block holds something. Leading blank lines never start a
// block and all-blank blocks are not emitted.
func segment(text string) []block {
	var blocks []block
	var cur block

	flush := func() {
		for _, line := range cur.lines {
			if !isBlank(line) {
				blocks = append(blocks, cur)
				break
			}
		}
		cur = block{}
	}

	for i, line := range splitLines(text) {
		if len(cur.lines) == 0 && isBlank(line) {
			continue
		}
		if isTitle(line) && len(cur.lines) > 0 {
			flush()
		}
		if len(cur.lines) == 0 {
			cur.start = i + 1
		}
		cur.lines = append(cur.lines, line)
	}
	flush()

	return blocks
}

// Segment splits a document into block texts, one per candidate recipe.
// It performs no validation; see ParseBlock.
func Segment(text string) []string {
	blocks := segment(text)
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.text())
	}
	return out
}
