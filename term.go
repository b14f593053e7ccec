package aldo

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var (
	stdinFd  = int(os.Stdin.Fd())
	stdoutFd = int(os.Stdout.Fd())
)

// termSource reads single bytes from the terminal. Raw mode sets
// VMIN=0 and VTIME=1, so each read returns within a tenth of a second;
// a zero-length read is the "no key yet" tick.
type termSource struct {
	fd int
}

func (s termSource) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err == unix.EAGAIN || err == unix.EINTR {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (e *Editor) enableRawMode() error {
	if e.rawmode {
		return nil
	}
	if !term.IsTerminal(stdinFd) {
		return errors.New("not a tty")
	}
	orig, err := unix.IoctlGetTermios(stdinFd, ioctlReadTermios)
	if err != nil {
		return err
	}
	e.origTermios = orig

	raw := *orig
	// Input modes
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output modes
	raw.Oflag &^= unix.OPOST
	// Control modes
	raw.Cflag |= unix.CS8
	// Local modes
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Control chars: read returns after 1 byte or a 100ms timeout
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(stdinFd, ioctlWriteTermios, &raw); err != nil {
		return err
	}
	e.rawmode = true
	return nil
}

// DisableRawMode restores the terminal to its original mode.
func (e *Editor) DisableRawMode() {
	if e.rawmode && e.origTermios != nil {
		unix.IoctlSetTermios(stdinFd, ioctlWriteTermios, e.origTermios)
		e.rawmode = false
	}
}

func getWindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(stdoutFd)
	if err != nil || cols == 0 {
		// The cursor-position fallback requires raw mode, which may not
		// be active yet. Return a safe default.
		return 24, 80, nil
	}
	return rows, cols, nil
}

func (e *Editor) updateWindowSize() error {
	rows, cols, err := getWindowSize()
	if err != nil {
		return err
	}
	e.view.rows = rows - 2 // room for status and message bars
	e.view.cols = cols
	return nil
}

func (e *Editor) handleSigWinCh() {
	e.updateWindowSize()
	// The next repaint re-snaps the offsets to the new dimensions.
	e.refreshScreen()
}
