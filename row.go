package aldo

import "strings"

// tabStop is the fixed tab width used for the rendered form.
const tabStop = 8

// Row is one line of the document: the raw text as typed, the
// tab-expanded render form, and one highlight tag per render byte.
// The render and highlight buffers are derived state; they are
// recomputed whenever chars changes and never mutated independently
// (the search overlay excepted, which snapshots and restores them).
type Row struct {
	chars         string
	render        string
	hl            []byte
	hlOpenComment bool // a block comment is still open at end of row
}

// updateRender rebuilds the render form from chars. A tab advances to
// the next multiple of tabStop; every other byte maps one to one.
func (r *Row) updateRender() {
	var b strings.Builder
	for i := 0; i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			b.WriteByte(' ')
			for b.Len()%tabStop != 0 {
				b.WriteByte(' ')
			}
		} else {
			b.WriteByte(r.chars[i])
		}
	}
	r.render = b.String()
}

// cxToRx maps a cursor position in chars to the corresponding column
// in render.
func (r *Row) cxToRx(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx: it maps a render column (for
// example a search hit inside render) back to an editable chars
// index.
func (r *Row) rxToCx(rx int) int {
	cur := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}
