package aldo

import "testing"

func TestUpdateRenderExpandsTabs(t *testing.T) {
	tests := []struct {
		chars string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\t", "        "},
		{"\tx", "        x"},
		{"ab\tc", "ab      c"},
		{"\t\t", "                "},
		{"1234567\tx", "1234567 x"},
		{"12345678\tx", "12345678        x"},
	}

	for _, tt := range tests {
		r := &Row{chars: tt.chars}
		r.updateRender()
		if r.render != tt.want {
			t.Errorf("render(%q) = %q, want %q", tt.chars, r.render, tt.want)
		}
	}
}

func TestCxToRx(t *testing.T) {
	r := &Row{chars: "\tab\tc"}
	r.updateRender()

	tests := []struct {
		cx, rx int
	}{
		{0, 0},
		{1, 8},
		{2, 9},
		{3, 10},
		{4, 16},
		{5, 17},
	}
	for _, tt := range tests {
		if got := r.cxToRx(tt.cx); got != tt.rx {
			t.Errorf("cxToRx(%d) = %d, want %d", tt.cx, got, tt.rx)
		}
	}
}

func TestRxToCx(t *testing.T) {
	r := &Row{chars: "\tab"}
	r.updateRender()

	tests := []struct {
		rx, cx int
	}{
		{0, 0},
		{3, 0}, // inside the tab span
		{7, 0},
		{8, 1},
		{9, 2},
		{100, 3}, // past end clamps to line length
	}
	for _, tt := range tests {
		if got := r.rxToCx(tt.rx); got != tt.cx {
			t.Errorf("rxToCx(%d) = %d, want %d", tt.rx, got, tt.cx)
		}
	}
}

func TestCxRxRoundTrip(t *testing.T) {
	// For lines of tabs and letters, mapping a cursor to render
	// coordinates and back must be stable.
	lines := []string{
		"",
		"abc",
		"\t",
		"\tabc",
		"a\tb\tc",
		"\t\tx",
		"hello\tworld\t",
	}
	for _, chars := range lines {
		r := &Row{chars: chars}
		r.updateRender()
		for cx := 0; cx <= len(chars); cx++ {
			rx := r.cxToRx(cx)
			if got := r.cxToRx(r.rxToCx(rx)); got != rx {
				t.Errorf("line %q cx %d: round trip rx %d -> %d",
					chars, cx, rx, got)
			}
		}
	}
}
