package aldo

import (
	"bytes"
	"os"
	"strings"
)

// Document is the ordered sequence of rows being edited, the dirty
// counter, and the path the buffer is bound to. It owns all editing
// operations; every mutation of a row's text recomputes that row's
// derived buffers and carries highlight state forward as needed.
type Document struct {
	rows   []*Row
	dirty  int
	path   string
	syntax *Syntax
}

// NewDocument returns an empty document with no path and no syntax.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) NumRows() int { return len(d.rows) }

func (d *Document) Row(at int) *Row { return d.rows[at] }

// Dirty reports whether the buffer has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty > 0 }

func (d *Document) Path() string { return d.path }

// SetPath renames the document, reselects the syntax scheme, and
// re-classifies every row under it.
func (d *Document) SetPath(path string) {
	d.path = path
	d.syntax = selectSyntax(path)
	for i, row := range d.rows {
		updateSyntax(d.syntax, row, i > 0 && d.rows[i-1].hlOpenComment)
	}
}

// updateRow recomputes the render form of the row at the given
// position and re-classifies it and any rows its carry flag reaches.
func (d *Document) updateRow(at int) {
	d.rows[at].updateRender()
	d.rehighlightFrom(at)
}

// rehighlightFrom re-classifies rows starting at the given position.
// The chain continues only while a row's trailing open-comment flag
// flips, so each row is visited at most once per call and the loop
// terminates on any input.
func (d *Document) rehighlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		open := i > 0 && d.rows[i-1].hlOpenComment
		if !updateSyntax(d.syntax, d.rows[i], open) {
			break
		}
	}
}

// InsertRow inserts a row holding s at the given position.
func (d *Document) InsertRow(at int, s string) {
	if at < 0 || at > len(d.rows) {
		return
	}
	row := &Row{chars: s}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	d.updateRow(at)
	d.dirty++
}

// DeleteRow removes the row at the given position and re-classifies
// the rows that followed it.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	if at < len(d.rows) {
		d.rehighlightFrom(at)
	}
	d.dirty++
}

// InsertChar inserts c into the row at position cy at column cx. A
// cursor past the last row appends empty rows first; a column past the
// end of the line pads with spaces.
func (d *Document) InsertChar(cy, cx int, c byte) {
	for len(d.rows) <= cy {
		d.InsertRow(len(d.rows), "")
	}
	row := d.rows[cy]
	if cx > len(row.chars) {
		row.chars += strings.Repeat(" ", cx-len(row.chars)) + string(c)
	} else {
		row.chars = row.chars[:cx] + string(c) + row.chars[cx:]
	}
	d.updateRow(cy)
	d.dirty++
}

// DeleteChar removes the character before column cx of the row at
// position cy. Deleting at column zero is a no-op here; joining rows
// is JoinRow's job.
func (d *Document) DeleteChar(cy, cx int) {
	if cy >= len(d.rows) || cx <= 0 || cx > len(d.rows[cy].chars) {
		return
	}
	row := d.rows[cy]
	row.chars = row.chars[:cx-1] + row.chars[cx:]
	d.updateRow(cy)
	d.dirty++
}

// SplitRow breaks the row at position cy at column cx, moving the
// tail onto a new following row. Splitting at column zero inserts an
// empty row above instead.
func (d *Document) SplitRow(cy, cx int) {
	if cy >= len(d.rows) {
		d.InsertRow(len(d.rows), "")
		return
	}
	row := d.rows[cy]
	if cx > len(row.chars) {
		cx = len(row.chars)
	}
	if cx == 0 {
		d.InsertRow(cy, "")
		return
	}
	tail := row.chars[cx:]
	row.chars = row.chars[:cx]
	d.updateRow(cy)
	d.dirty++
	d.InsertRow(cy+1, tail)
}

// JoinRow appends the row at position cy onto the previous row and
// removes it.
func (d *Document) JoinRow(cy int) {
	if cy <= 0 || cy >= len(d.rows) {
		return
	}
	prev := d.rows[cy-1]
	prev.chars += d.rows[cy].chars
	d.updateRow(cy - 1)
	d.dirty++
	d.DeleteRow(cy)
}

// Serialize joins every row with a trailing newline, including the
// last.
func (d *Document) Serialize() []byte {
	var b bytes.Buffer
	for _, row := range d.rows {
		b.WriteString(row.chars)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Load reads the named file into the document, one row per line with
// line terminators stripped, and selects the matching syntax scheme.
// A missing file is not an error: the editor starts with an empty
// buffer that is created on the first save.
func (d *Document) Load(path string) error {
	d.path = path
	d.syntax = selectSyntax(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			d.dirty = 0
			return nil
		}
		return err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		d.InsertRow(len(d.rows), strings.TrimRight(line, "\r"))
	}
	d.dirty = 0
	return nil
}

// Save writes the serialized document to its path with
// truncate-then-write semantics. The dirty count is cleared only when
// every byte made it to disk. It returns the number of bytes written.
func (d *Document) Save() (int, error) {
	buf := d.Serialize()
	if err := os.WriteFile(d.path, buf, 0644); err != nil {
		return 0, err
	}
	d.dirty = 0
	return len(buf), nil
}
