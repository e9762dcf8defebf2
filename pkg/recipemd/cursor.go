package recipemd

// cursor walks a block's lines front to back.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// peek returns the current line without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.done() {
		return "", false
	}
	return c.lines[c.pos], true
}

func (c *cursor) next() (string, bool) {
	line, ok := c.peek()
	if ok {
		c.pos++
	}
	return line, ok
}

func (c *cursor) skipBlank() {
	for !c.done() && isBlank(c.lines[c.pos]) {
		c.pos++
	}
}

// takeWhile consumes lines while fn accepts them and collects fn's values.
// The first rejected line is left unconsumed.
func (c *cursor) takeWhile(fn func(line string) (string, bool)) []string {
	var out []string
	for !c.done() {
		v, ok := fn(c.lines[c.pos])
		if !ok {
			break
		}
		out = append(out, v)
		c.pos++
	}
	return out
}

// rest consumes and returns every remaining line.
func (c *cursor) rest() []string {
	out := c.lines[c.pos:]
	c.pos = len(c.lines)
	return out
}
