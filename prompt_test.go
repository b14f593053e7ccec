package aldo

import (
	"errors"
	"testing"
)

func TestPromptCollectsInput(t *testing.T) {
	e := newTestEditor('h', 'i', int(keyBackspace), '!', int(keyEnter))

	got, err := e.prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("prompt() error: %v", err)
	}
	if got != "h!" {
		t.Fatalf("prompt() = %q, want %q", got, "h!")
	}
}

func TestPromptEscapeCancels(t *testing.T) {
	e := newTestEditor('a', 'b', int(keyEsc))

	got, err := e.prompt("Search: %s", nil)
	if !errors.Is(err, ErrPromptCanceled) {
		t.Fatalf("prompt() error = %v, want ErrPromptCanceled", err)
	}
	if got != "" {
		t.Fatalf("prompt() = %q, want empty on cancel", got)
	}
}

func TestPromptEmptyEnterIgnored(t *testing.T) {
	// Enter on an empty buffer does not confirm; the prompt keeps
	// collecting.
	e := newTestEditor(int(keyEnter), 'a', int(keyEnter))

	got, err := e.prompt("Name: %s", nil)
	if err != nil {
		t.Fatalf("prompt() error: %v", err)
	}
	if got != "a" {
		t.Fatalf("prompt() = %q, want %q", got, "a")
	}
}

func TestPromptCallbackSeesEveryKeystroke(t *testing.T) {
	e := newTestEditor('x', -1, 'y', int(keyEnter))

	type call struct {
		input string
		k     key
	}
	var calls []call
	_, err := e.prompt("%s", func(input string, k key) {
		calls = append(calls, call{input, k})
	})
	if err != nil {
		t.Fatalf("prompt() error: %v", err)
	}

	// Timed-out reads are not keystrokes; the terminating Enter is.
	want := []call{
		{"x", key('x')},
		{"xy", key('y')},
		{"xy", keyEnter},
	}
	if len(calls) != len(want) {
		t.Fatalf("callback ran %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestPromptCallbackSeesEscape(t *testing.T) {
	e := newTestEditor(int(keyEsc))

	var last key
	_, err := e.prompt("%s", func(input string, k key) { last = k })
	if !errors.Is(err, ErrPromptCanceled) {
		t.Fatalf("prompt() error = %v, want ErrPromptCanceled", err)
	}
	if last != keyEsc {
		t.Fatalf("last callback key = %d, want keyEsc", last)
	}
}

func TestPromptBackspaceOnEmptyInput(t *testing.T) {
	e := newTestEditor(int(keyBackspace), 'z', int(keyEnter))

	got, err := e.prompt("%s", nil)
	if err != nil {
		t.Fatalf("prompt() error: %v", err)
	}
	if got != "z" {
		t.Fatalf("prompt() = %q, want %q", got, "z")
	}
}
