package recipemd

import (
	"regexp"
	"strings"
)

const frontmatterDelim = "---"

var frontmatterLine = regexp.MustCompile(`^\s*([A-Za-z0-9_]+)\s*:\s*(.*)$`)

type metaField int

const (
	fieldYield metaField = iota
	fieldTotalTime
)

// metaAliases maps lower-cased frontmatter keys to the field they set.
var metaAliases = map[string]metaField{
	"yield":      fieldYield,
	"servings":   fieldYield,
	"time":       fieldTotalTime,
	"total_time": fieldTotalTime,
	"duration":   fieldTotalTime,
}

type frontmatter struct {
	yield      string
	totalTime  string
	terminated bool
}

// set applies one key/value pair. Later keys overwrite earlier ones.
func (fm *frontmatter) set(key, value string) {
	field, ok := metaAliases[strings.ToLower(key)]
	if !ok {
		return
	}
	switch field {
	case fieldYield:
		fm.yield = value
	case fieldTotalTime:
		fm.totalTime = value
	}
}

// parseFrontmatter reads a "---" delimited block if the cursor is on its
// opening delimiter. Without a closing delimiter it consumes the rest of the
// block. ok reports whether a block was opened at all.
func parseFrontmatter(c *cursor) (fm frontmatter, ok bool) {
	line, more := c.peek()
	if !more || line != frontmatterDelim {
		return fm, false
	}
	c.next()

	for {
		line, more := c.next()
		if !more {
			return fm, true
		}
		if line == frontmatterDelim {
			fm.terminated = true
			return fm, true
		}
		if isBlank(line) {
			continue
		}
		m := frontmatterLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		fm.set(m[1], strings.TrimSpace(m[2]))
	}
}
