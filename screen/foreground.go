package screen

// ForegroundSpan finds the first and last columns of buf containing a
// pixel at or below level. ok is false when no such pixel exists.
func ForegroundSpan(buf *Buffer, level uint8) (first, last int, ok bool) {
	w := buf.Width()

	first = -1
	for x := 0; x < w && first < 0; x++ {
		if buf.columnHas(x, level) {
			first = x
		}
	}
	if first < 0 {
		return 0, 0, false
	}

	last = first
	for x := w - 1; x > first; x-- {
		if buf.columnHas(x, level) {
			last = x
			break
		}
	}
	return first, last, true
}

func (buf *Buffer) columnHas(x int, level uint8) bool {
	for y := buf.Rect.Min.Y; y < buf.Rect.Max.Y; y++ {
		if buf.Pix[buf.PixOffset(buf.Rect.Min.X+x, y)] <= level {
			return true
		}
	}
	return false
}
