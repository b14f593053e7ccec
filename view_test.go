package aldo

import "testing"

func TestScrollVerticalSnap(t *testing.T) {
	d := NewDocument()
	for i := 0; i < 50; i++ {
		d.InsertRow(i, "line")
	}
	v := View{rows: 10, cols: 40}

	v.cy = 25
	v.scroll(d)
	if v.rowoff != 16 {
		t.Fatalf("rowoff = %d, want 16", v.rowoff)
	}

	// Moving within the viewport does not scroll.
	v.cy = 20
	v.scroll(d)
	if v.rowoff != 16 {
		t.Fatalf("rowoff = %d, want 16", v.rowoff)
	}

	// Moving above the viewport snaps the top edge to the cursor.
	v.cy = 5
	v.scroll(d)
	if v.rowoff != 5 {
		t.Fatalf("rowoff = %d, want 5", v.rowoff)
	}
}

func TestScrollHorizontalSnap(t *testing.T) {
	d := NewDocument()
	d.InsertRow(0, "0123456789012345678901234567890123456789")
	v := View{rows: 10, cols: 10}

	v.cx = 25
	v.scroll(d)
	if v.coloff != 16 {
		t.Fatalf("coloff = %d, want 16", v.coloff)
	}

	v.cx = 3
	v.scroll(d)
	if v.coloff != 3 {
		t.Fatalf("coloff = %d, want 3", v.coloff)
	}
}

func TestScrollUsesRenderColumn(t *testing.T) {
	d := NewDocument()
	d.InsertRow(0, "\tabc")
	v := View{rows: 10, cols: 5}

	// cx 1 sits after the tab: render column 8, past a 5-wide viewport.
	v.cx = 1
	v.scroll(d)
	if v.rx != 8 {
		t.Fatalf("rx = %d, want 8", v.rx)
	}
	if v.coloff != 4 {
		t.Fatalf("coloff = %d, want 4", v.coloff)
	}
}

func TestScrollPastLastRow(t *testing.T) {
	d := NewDocument()
	d.InsertRow(0, "only")
	v := View{rows: 10, cols: 40}

	// The cursor may sit one past the last row; rx resets to zero there.
	v.cy = 1
	v.cx = 3
	v.scroll(d)
	if v.rx != 0 {
		t.Fatalf("rx = %d, want 0", v.rx)
	}
}
