// Package aldo is a minimal terminal text editor in the kilo family.
// It emits VT100 escape sequences directly, without depending on
// ncurses or a terminal UI framework.
package aldo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

const Version = "0.0.1"

const (
	// quitConfirmations is how many consecutive Ctrl-Q presses it
	// takes to quit with unsaved changes.
	quitConfirmations = 3

	statusMsgTimeout = 5 * time.Second
)

// Editor holds the complete state of the editor: the document, the
// view onto it, the key decoder and output sink, and the transient
// status message. One instance is created at startup and owns
// everything; there is no other mutable state in the package.
type Editor struct {
	doc  *Document
	view View

	keys keyDecoder
	out  io.Writer

	statusmsg  string
	statustime time.Time

	quitTimes int

	rawmode     bool
	origTermios *unix.Termios
}

// New creates an Editor wired to the process terminal, initializes
// the viewport size, and installs the SIGWINCH handler.
func New() (*Editor, error) {
	e := &Editor{
		doc:       NewDocument(),
		keys:      keyDecoder{src: termSource{fd: stdinFd}},
		out:       os.Stdout,
		quitTimes: quitConfirmations,
	}
	if err := e.updateWindowSize(); err != nil {
		return nil, err
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	go func() {
		for range ch {
			e.handleSigWinCh()
		}
	}()
	return e, nil
}

// Open loads the named file into the editor buffer and selects the
// matching syntax scheme. A missing file names a new buffer.
func (e *Editor) Open(filename string) error {
	return e.doc.Load(filename)
}

// SetStatusMessage sets the transient message shown in the bottom
// bar. It expires after a few seconds.
func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, args...)
	e.statustime = time.Now()
}

// ---------- Editing operations ----------

func (e *Editor) insertChar(c byte) {
	e.doc.InsertChar(e.view.cy, e.view.cx, c)
	e.view.cx++
}

func (e *Editor) insertNewline() {
	e.doc.SplitRow(e.view.cy, e.view.cx)
	e.view.cy++
	e.view.cx = 0
}

// deleteChar removes the character before the cursor, joining the row
// into the previous one when the cursor sits at column zero.
func (e *Editor) deleteChar() {
	v := &e.view
	if v.cy >= e.doc.NumRows() {
		return
	}
	if v.cx == 0 && v.cy == 0 {
		return
	}
	if v.cx > 0 {
		e.doc.DeleteChar(v.cy, v.cx)
		v.cx--
	} else {
		v.cx = len(e.doc.Row(v.cy - 1).chars)
		e.doc.JoinRow(v.cy)
		v.cy--
	}
}

// ---------- Cursor movement ----------

// moveCursor applies one arrow-key movement in chars coordinates and
// clamps the column to the target row's length.
func (e *Editor) moveCursor(k key) {
	v := &e.view
	var row *Row
	if v.cy < e.doc.NumRows() {
		row = e.doc.Row(v.cy)
	}

	switch k {
	case arrowLeft:
		if v.cx != 0 {
			v.cx--
		} else if v.cy > 0 {
			v.cy--
			v.cx = len(e.doc.Row(v.cy).chars)
		}
	case arrowRight:
		if row != nil {
			if v.cx < len(row.chars) {
				v.cx++
			} else {
				v.cy++
				v.cx = 0
			}
		}
	case arrowUp:
		if v.cy != 0 {
			v.cy--
		}
	case arrowDown:
		if v.cy < e.doc.NumRows() {
			v.cy++
		}
	}

	rowLen := 0
	if v.cy < e.doc.NumRows() {
		rowLen = len(e.doc.Row(v.cy).chars)
	}
	if v.cx > rowLen {
		v.cx = rowLen
	}
}

// ---------- File saving ----------

// save writes the document to disk, prompting for a path first when
// the buffer has none. Save failures are reported in the status bar
// and keep the dirty count; only prompt read failures are returned.
func (e *Editor) save() error {
	if e.doc.Path() == "" {
		path, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			if errors.Is(err, ErrPromptCanceled) {
				e.SetStatusMessage("Save aborted")
				return nil
			}
			return err
		}
		e.doc.SetPath(path)
	}
	n, err := e.doc.Save()
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return nil
	}
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}

// ---------- Event processing ----------

// processKey dispatches one logical key. The returned bool is false
// when the editor should exit; a non-nil error is fatal (an I/O
// failure on a read inside a prompt).
func (e *Editor) processKey(k key) (bool, error) {
	switch k {
	case keyEnter:
		e.insertNewline()
	case ctrlQ:
		if e.doc.Dirty() {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.SetStatusMessage("WARNING!!! File has unsaved changes. "+
					"Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return true, nil
			}
		}
		return false, nil
	case ctrlS:
		if err := e.save(); err != nil {
			return false, err
		}
	case ctrlF:
		if err := e.find(); err != nil {
			return false, err
		}
	case ctrlA, homeKey:
		e.view.cx = 0
	case ctrlE, endKey:
		if e.view.cy < e.doc.NumRows() {
			e.view.cx = len(e.doc.Row(e.view.cy).chars)
		}
	case keyBackspace, ctrlH:
		e.deleteChar()
	case delKey:
		e.moveCursor(arrowRight)
		e.deleteChar()
	case pageUp, pageDown:
		if k == pageUp {
			e.view.cy = e.view.rowoff
		} else {
			e.view.cy = e.view.rowoff + e.view.rows - 1
			if e.view.cy > e.doc.NumRows() {
				e.view.cy = e.doc.NumRows()
			}
		}
		dir := arrowDown
		if k == pageUp {
			dir = arrowUp
		}
		for i := 0; i < e.view.rows; i++ {
			e.moveCursor(dir)
		}
	case arrowUp, arrowDown, arrowLeft, arrowRight:
		e.moveCursor(k)
	case ctrlC, ctrlD, ctrlL, keyEsc, keyNone:
		// Ignored.
	default:
		if k >= 0 && k < 256 {
			e.insertChar(byte(k))
		}
	}
	e.quitTimes = quitConfirmations
	return true, nil
}

// Run enables raw mode, switches to the alternate screen buffer, and
// processes keys until the user quits. The terminal is restored on
// quit, on fatal errors, and on SIGTERM/SIGINT.
func (e *Editor) Run() error {
	if err := e.enableRawMode(); err != nil {
		return err
	}

	e.out.Write([]byte("\x1b[?1049h"))

	cleanup := func() {
		// Blank the screen and leave the alternate buffer before
		// giving the terminal back.
		e.out.Write([]byte("\x1b[2J\x1b[H\x1b[?1049l"))
		e.DisableRawMode()
	}
	defer cleanup()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGTERM, unix.SIGINT)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	for {
		e.refreshScreen()
		k, err := e.keys.ReadKey()
		if err != nil {
			return err
		}
		if k == keyNone {
			// Timed-out read: repaint so the message bar expiry stays
			// live even without input.
			continue
		}
		cont, err := e.processKey(k)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
