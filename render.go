package aldo

import (
	"bytes"
	"fmt"
	"time"
)

// refreshScreen recomputes the scroll offsets and paints one frame.
func (e *Editor) refreshScreen() {
	e.view.scroll(e.doc)
	e.out.Write(e.renderFrame())
}

// renderFrame assembles one complete terminal frame: hidden cursor,
// the visible document rows, the status and message bars, and the
// cursor reposition. The frame is one contiguous buffer so it can be
// written in a single operation.
func (e *Editor) renderFrame() []byte {
	var ab bytes.Buffer

	ab.WriteString("\x1b[?25l") // Hide cursor
	ab.WriteString("\x1b[H")    // Go home

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	fmt.Fprintf(&ab, "\x1b[%d;%dH",
		e.view.cy-e.view.rowoff+1, e.view.rx-e.view.coloff+1)
	ab.WriteString("\x1b[?25h") // Show cursor

	return ab.Bytes()
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	v := &e.view
	for y := 0; y < v.rows; y++ {
		filerow := v.rowoff + y

		if filerow >= e.doc.NumRows() {
			if e.doc.NumRows() == 0 && y == v.rows/3 {
				welcome := fmt.Sprintf("aldo editor -- version %s", Version)
				if len(welcome) > v.cols {
					welcome = welcome[:v.cols]
				}
				padding := (v.cols - len(welcome)) / 2
				if padding > 0 {
					ab.WriteByte('~')
					padding--
				}
				for ; padding > 0; padding-- {
					ab.WriteByte(' ')
				}
				ab.WriteString(welcome)
			} else {
				ab.WriteByte('~')
			}
			ab.WriteString("\x1b[0K\r\n")
			continue
		}

		row := e.doc.Row(filerow)
		length := len(row.render) - v.coloff
		if length < 0 {
			length = 0
		}
		if length > v.cols {
			length = v.cols
		}
		if length > 0 {
			rs := row.render[v.coloff : v.coloff+length]
			hl := row.hl[v.coloff : v.coloff+length]
			currentColor := -1
			for j := 0; j < length; j++ {
				c := rs[j]
				switch {
				case c < 32 || c == 127:
					// Control bytes become an inverse-video glyph; the
					// color state is restored afterwards.
					sym := byte('?')
					if c <= 26 {
						sym = '@' + c
					}
					ab.WriteString("\x1b[7m")
					ab.WriteByte(sym)
					ab.WriteString("\x1b[0m")
					if currentColor != -1 {
						fmt.Fprintf(ab, "\x1b[%dm", currentColor)
					}
				case hl[j] == hlNormal:
					if currentColor != -1 {
						ab.WriteString("\x1b[39m")
						currentColor = -1
					}
					ab.WriteByte(c)
				default:
					// Color escapes are emitted only when the tag run
					// changes, not per character.
					color := syntaxToColor(hl[j])
					if color != currentColor {
						currentColor = color
						fmt.Fprintf(ab, "\x1b[%dm", color)
					}
					ab.WriteByte(c)
				}
			}
		}
		ab.WriteString("\x1b[39m")
		ab.WriteString("\x1b[0K\r\n")
	}
}

func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[0K")
	ab.WriteString("\x1b[7m")

	name := e.doc.Path()
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if e.doc.Dirty() {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", name, e.doc.NumRows(), modified)

	filetype := "no ft"
	if e.doc.syntax != nil {
		filetype = e.doc.syntax.FileType
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.view.cy+1, e.doc.NumRows())

	if len(status) > e.view.cols {
		status = status[:e.view.cols]
	}
	ab.WriteString(status)
	for slen := len(status); slen < e.view.cols; slen++ {
		if e.view.cols-slen == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString("\x1b[0m\r\n")
}

func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[0K")
	if e.statusmsg == "" || time.Since(e.statustime) >= statusMsgTimeout {
		return
	}
	msg := e.statusmsg
	if len(msg) > e.view.cols {
		msg = msg[:e.view.cols]
	}
	ab.WriteString(msg)
}
