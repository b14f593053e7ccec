package aldo

import (
	"errors"
	"strings"
)

// find runs an incremental search session over the prompt. Arrow keys
// pick the scan direction, any other keystroke restarts the scan with
// the updated query. A hit moves the cursor, forces the view to
// re-snap with the match row at the top, and overlays the match tag on
// the hit span; the row's prior classification is restored before each
// new overlay and when the session ends, so overlay state never leaks
// into the permanent highlight. Cancelling restores the cursor and
// scroll saved on entry; confirming leaves the cursor on the last
// match.
func (e *Editor) find() error {
	savedCx, savedCy := e.view.cx, e.view.cy
	savedColoff, savedRowoff := e.view.coloff, e.view.rowoff

	lastMatch := -1
	direction := 1
	savedHlRow := -1
	var savedHl []byte

	restoreHl := func() {
		if savedHl != nil {
			copy(e.doc.Row(savedHlRow).hl, savedHl)
			savedHl = nil
		}
	}

	onKey := func(query string, k key) {
		restoreHl()

		switch {
		case k == keyEnter || k == keyEsc:
			lastMatch = -1
			direction = 1
			return
		case k == arrowRight || k == arrowDown:
			direction = 1
		case k == arrowLeft || k == arrowUp:
			direction = -1
		default:
			lastMatch = -1
			direction = 1
		}

		if lastMatch == -1 {
			direction = 1
		}
		current := lastMatch
		for i := 0; i < e.doc.NumRows(); i++ {
			current += direction
			if current == -1 {
				current = e.doc.NumRows() - 1
			} else if current == e.doc.NumRows() {
				current = 0
			}

			row := e.doc.Row(current)
			rx := strings.Index(row.render, query)
			if rx == -1 {
				continue
			}

			lastMatch = current
			e.view.cy = current
			e.view.cx = row.rxToCx(rx)
			// Past-the-end offset so the next scroll snap lands the
			// match row at the top of the viewport.
			e.view.rowoff = e.doc.NumRows()

			savedHlRow = current
			savedHl = append([]byte(nil), row.hl...)
			for j := rx; j < rx+len(query) && j < len(row.hl); j++ {
				row.hl[j] = hlMatch
			}
			break
		}
	}

	_, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", onKey)
	if errors.Is(err, ErrPromptCanceled) {
		e.view.cx, e.view.cy = savedCx, savedCy
		e.view.coloff, e.view.rowoff = savedColoff, savedRowoff
		return nil
	}
	return err
}
