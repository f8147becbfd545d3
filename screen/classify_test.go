package screen

import "testing"

// gridOf builds a grid of 1x1 blocks whose means are the given rows.
func gridOf(t *testing.T, rows ...[]uint8) *Grid {
	t.Helper()
	buf := NewBuffer(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(buf.Pix[y*buf.Stride:], row)
	}
	g, err := Partition(buf, 1, EdgeDrop)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestClassifyRightDark(t *testing.T) {
	g := gridOf(t,
		[]uint8{255, 255, 0},
		[]uint8{255, 255, 0},
		[]uint8{255, 255, 0},
	)
	c := Classifier{Threshold: 110}

	got := c.Classify(g, 1, 1)
	if got.Role != RoleRightDark {
		t.Errorf("expected RightDark, got %v", got.Role)
	}
	if !got.Right.Present || got.Right.Sum != 0 {
		t.Errorf("unexpected right aggregate %+v", got.Right)
	}
	if !got.Left.Present || got.Left.Sum != 765 {
		t.Errorf("unexpected left aggregate %+v", got.Left)
	}
}

func TestClassifyLeftDark(t *testing.T) {
	g := gridOf(t,
		[]uint8{0, 255, 255},
		[]uint8{0, 255, 255},
		[]uint8{0, 255, 255},
	)
	got := Classifier{Threshold: 110}.Classify(g, 1, 1)
	if got.Role != RoleLeftDark {
		t.Errorf("expected LeftDark, got %v", got.Role)
	}
}

func TestClassifyRightTakesPrecedence(t *testing.T) {
	g := gridOf(t,
		[]uint8{0, 255, 0},
		[]uint8{0, 255, 0},
		[]uint8{0, 255, 0},
	)
	if got := (Classifier{Threshold: 110}).Classify(g, 1, 1); got.Role != RoleRightDark {
		t.Errorf("expected RightDark, got %v", got.Role)
	}
}

func TestClassifyBoundaryColumns(t *testing.T) {
	g := gridOf(t,
		[]uint8{0, 0, 0},
		[]uint8{0, 0, 0},
	)
	c := Classifier{Threshold: 110}

	first := c.Classify(g, 0, 0)
	if first.Left.Present {
		t.Error("first column must not compute a left aggregate")
	}
	if first.Role != RoleRightDark {
		t.Errorf("expected RightDark, got %v", first.Role)
	}

	last := c.Classify(g, 2, 1)
	if last.Right.Present {
		t.Error("last column must not compute a right aggregate")
	}
	if last.Role != RoleLeftDark {
		t.Errorf("expected LeftDark, got %v", last.Role)
	}

	single := gridOf(t, []uint8{0})
	only := c.Classify(single, 0, 0)
	if only.Left.Present || only.Right.Present || only.Role != RoleNeutral {
		t.Errorf("single column: unexpected %+v", only)
	}
}

func TestClassifyReplicatesEdgeRows(t *testing.T) {
	g := gridOf(t,
		[]uint8{255, 255, 0},
		[]uint8{255, 255, 255},
	)
	got := Classifier{Threshold: 110}.Classify(g, 1, 0)
	// rows -1, 0, 1 of column 2 read as 0, 0, 255
	if got.Right.Sum != 255 {
		t.Errorf("expected right sum 255, got %d", got.Right.Sum)
	}
	if got.Role != RoleRightDark {
		t.Errorf("expected RightDark, got %v", got.Role)
	}
}

func TestClassifyThresholdIsStrict(t *testing.T) {
	g := gridOf(t,
		[]uint8{255, 255, 110},
		[]uint8{255, 255, 110},
		[]uint8{255, 255, 110},
	)
	if got := (Classifier{Threshold: 110}).Classify(g, 1, 1); got.Role != RoleNeutral {
		t.Errorf("expected Neutral at exactly 3*threshold, got %v", got.Role)
	}
	if got := (Classifier{Threshold: 111}).Classify(g, 1, 1); got.Role != RoleRightDark {
		t.Errorf("expected RightDark, got %v", got.Role)
	}
}

func TestClassifyOutsideGrid(t *testing.T) {
	g := gridOf(t, []uint8{0, 0})
	got := Classifier{Threshold: 110}.Classify(g, 5, 5)
	if got.Role != RoleNeutral || got.Left.Present || got.Right.Present {
		t.Errorf("unexpected %+v", got)
	}
}
