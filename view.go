package aldo

// View tracks the cursor, its derived render column, the scroll
// offsets, and the viewport dimensions. cx and cy are raw-character
// coordinates: cy indexes document rows, cx indexes bytes of the
// row's chars. rx is cx mapped into render coordinates and is
// recomputed once per frame.
type View struct {
	cx, cy int
	rx     int
	rowoff int
	coloff int
	rows   int // viewport height, status bars excluded
	cols   int
}

// scroll recomputes rx and snaps both offsets so the cursor stays
// inside the viewport. Pure snap-to-bounds: no animation, no
// hysteresis.
func (v *View) scroll(d *Document) {
	v.rx = 0
	if v.cy < d.NumRows() {
		v.rx = d.Row(v.cy).cxToRx(v.cx)
	}

	if v.cy < v.rowoff {
		v.rowoff = v.cy
	}
	if v.cy >= v.rowoff+v.rows {
		v.rowoff = v.cy - v.rows + 1
	}
	if v.rx < v.coloff {
		v.coloff = v.rx
	}
	if v.rx >= v.coloff+v.cols {
		v.coloff = v.rx - v.cols + 1
	}
}
