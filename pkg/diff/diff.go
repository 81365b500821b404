// Package diff renders line-oriented differences between two texts.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks how a line changed.
type Op byte

const (
	Equal  Op = ' '
	Delete Op = '-'
	Insert Op = '+'
)

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return string(l.Op) + l.Text
}

// Lines compares before and after line by line. Identical input yields only
// Equal lines.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var out []Line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		for _, line := range strings.Split(text, "\n") {
			out = append(out, Line{Op: op, Text: line})
		}
	}
	return out
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Unified renders before and after in unified format with the given labels.
// It returns an empty string when the texts are identical.
func Unified(before, after, beforeLabel, afterLabel string) string {
	lines := Lines(before, after)
	if !Changed(lines) {
		return ""
	}

	removed, added := 0, 0
	for _, l := range lines {
		switch l.Op {
		case Equal:
			removed++
			added++
		case Delete:
			removed++
		case Insert:
			added++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", beforeLabel, afterLabel)
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", removed, added)
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
