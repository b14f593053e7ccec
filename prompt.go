package aldo

import "errors"

// ErrPromptCanceled is returned when the user aborts a prompt with
// Escape. It is not a failure; callers restore whatever state they
// snapshotted before the prompt began.
var ErrPromptCanceled = errors.New("prompt canceled")

// prompt shows a status-bar prompt (format must contain one %s for
// the accumulated input) and collects a line of input. Backspace
// trims, Escape aborts, Enter confirms non-empty input, printable
// 7-bit characters append. The callback, when non-nil, runs after
// every keystroke including the terminating Enter or Escape, which
// gives live-search its hook. The prompt itself performs no disk or
// buffer I/O.
func (e *Editor) prompt(format string, callback func(input string, k key)) (string, error) {
	var buf []byte
	for {
		e.SetStatusMessage(format, string(buf))
		e.refreshScreen()

		k, err := e.keys.ReadKey()
		if err != nil {
			return "", err
		}
		if k == keyNone {
			continue
		}

		switch {
		case k == delKey || k == ctrlH || k == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == keyEsc:
			e.SetStatusMessage("")
			if callback != nil {
				callback(string(buf), k)
			}
			return "", ErrPromptCanceled
		case k == keyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(string(buf), k)
				}
				return string(buf), nil
			}
		case k >= 32 && k < 127:
			buf = append(buf, byte(k))
		}

		if callback != nil {
			callback(string(buf), k)
		}
	}
}
