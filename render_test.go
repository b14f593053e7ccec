package aldo

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func frame(e *Editor) []byte {
	e.view.scroll(e.doc)
	return e.renderFrame()
}

func TestRenderFrameStructure(t *testing.T) {
	e := newTestEditor()
	f := frame(e)

	if !bytes.HasPrefix(f, []byte("\x1b[?25l\x1b[H")) {
		t.Errorf("frame does not start by hiding the cursor and homing")
	}
	if !bytes.HasSuffix(f, []byte("\x1b[?25h")) {
		t.Errorf("frame does not end by showing the cursor")
	}
	if !bytes.Contains(f, []byte("\x1b[1;1H")) {
		t.Errorf("frame does not reposition the cursor to 1;1")
	}
	// One erase-to-EOL per text row plus the two bars; never a full
	// screen clear mid-frame.
	if got := bytes.Count(f, []byte("\x1b[0K")); got != e.view.rows+2 {
		t.Errorf("%d erase-to-EOL sequences, want %d", got, e.view.rows+2)
	}
	if bytes.Contains(f, []byte("\x1b[2J")) {
		t.Errorf("frame clears the whole screen")
	}
}

func TestRenderWelcomeBanner(t *testing.T) {
	e := newTestEditor()
	f := frame(e)

	want := fmt.Sprintf("aldo editor -- version %s", Version)
	if !bytes.Contains(f, []byte(want)) {
		t.Errorf("empty buffer frame missing welcome banner %q", want)
	}

	// Any buffer content suppresses the banner.
	e.doc.InsertRow(0, "x")
	if bytes.Contains(frame(e), []byte(want)) {
		t.Errorf("banner drawn over a non-empty buffer")
	}
}

func TestRenderStatusBar(t *testing.T) {
	e := newTestEditor()
	e.doc.InsertRow(0, "hello")
	f := frame(e)

	if !bytes.Contains(f, []byte("[No Name] - 1 lines (modified)")) {
		t.Errorf("status bar missing unnamed dirty buffer summary")
	}
	if !bytes.Contains(f, []byte("no ft | 1/1")) {
		t.Errorf("status bar missing filetype and position")
	}

	e.doc.SetPath("thing.go")
	e.doc.dirty = 0
	f = frame(e)
	if !bytes.Contains(f, []byte("thing.go - 1 lines")) {
		t.Errorf("status bar missing filename")
	}
	if bytes.Contains(f, []byte("(modified)")) {
		t.Errorf("clean buffer marked modified")
	}
	if !bytes.Contains(f, []byte("go | 1/1")) {
		t.Errorf("status bar missing selected filetype")
	}
}

func TestRenderMessageBarExpiry(t *testing.T) {
	e := newTestEditor()
	e.SetStatusMessage("hello there")

	if !bytes.Contains(frame(e), []byte("hello there")) {
		t.Fatal("fresh status message not drawn")
	}

	e.statustime = time.Now().Add(-statusMsgTimeout - time.Second)
	if bytes.Contains(frame(e), []byte("hello there")) {
		t.Fatal("expired status message still drawn")
	}
}

func TestRenderColorRuns(t *testing.T) {
	e := newTestEditor()
	e.doc.syntax = &HLDB[0]
	e.doc.InsertRow(0, "// a comment")
	f := frame(e)

	// One escape for the whole comment run, not one per byte.
	if got := bytes.Count(f, []byte("\x1b[36m")); got != 1 {
		t.Errorf("%d cyan escapes for one comment run, want 1", got)
	}
}

func TestRenderKeywordColors(t *testing.T) {
	e := newTestEditor()
	e.doc.syntax = &HLDB[0]
	e.doc.InsertRow(0, "return 0;")
	f := frame(e)

	if !bytes.Contains(f, []byte("\x1b[33m")) {
		t.Errorf("keyword run missing yellow escape")
	}
	if !bytes.Contains(f, []byte("\x1b[31m")) {
		t.Errorf("number run missing red escape")
	}
	// The semicolon returns to the default color.
	if !bytes.Contains(f, []byte("\x1b[39m;")) {
		t.Errorf("trailing punctuation not reset to default color")
	}
}

func TestRenderControlGlyph(t *testing.T) {
	e := newTestEditor()
	e.doc.InsertRow(0, "a\x01b")
	f := frame(e)

	if !bytes.Contains(f, []byte("\x1b[7mA\x1b[0m")) {
		t.Errorf("control byte 0x01 not rendered as inverse A")
	}
}

func TestRenderCursorPosition(t *testing.T) {
	e := newTestEditor()
	e.doc.InsertRow(0, "\tabc")
	e.doc.InsertRow(1, "def")
	e.view.cy = 0
	e.view.cx = 1 // after the tab: render column 8

	f := frame(e)
	if !bytes.Contains(f, []byte("\x1b[1;9H")) {
		t.Errorf("cursor not placed at render column of the tab stop")
	}
}

func TestRenderClipsToColumnOffset(t *testing.T) {
	e := newTestEditor()
	e.view.cols = 10
	e.doc.InsertRow(0, "0123456789ABCDEF")
	e.view.cx = 16

	f := frame(e)
	if !bytes.Contains(f, []byte("789ABCDEF")) {
		t.Errorf("scrolled frame missing visible tail of the row")
	}
	if bytes.Contains(f, []byte("0123456")) {
		t.Errorf("frame shows bytes left of the column offset")
	}
}
