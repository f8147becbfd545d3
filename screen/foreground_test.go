package screen

import "testing"

func TestForegroundSpan(t *testing.T) {
	buf := NewBuffer(10, 5)
	buf.Fill(255)
	buf.Pix[2*buf.Stride+3] = 0
	buf.Pix[4*buf.Stride+7] = 0

	first, last, ok := ForegroundSpan(buf, 0)
	if !ok || first != 3 || last != 7 {
		t.Errorf("expected 3..7, got %d..%d (%v)", first, last, ok)
	}
}

func TestForegroundSpanSingleColumn(t *testing.T) {
	buf := NewBuffer(10, 5)
	buf.Fill(255)
	buf.Pix[1*buf.Stride+0] = 20

	if _, _, ok := ForegroundSpan(buf, 0); ok {
		t.Error("20 is not black at level 0")
	}
	first, last, ok := ForegroundSpan(buf, 20)
	if !ok || first != 0 || last != 0 {
		t.Errorf("expected 0..0, got %d..%d (%v)", first, last, ok)
	}
}

func TestForegroundSpanNone(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Fill(255)
	if _, _, ok := ForegroundSpan(buf, 0); ok {
		t.Error("expected no foreground")
	}
	if _, _, ok := ForegroundSpan(NewBuffer(0, 0), 255); ok {
		t.Error("expected no foreground in an empty buffer")
	}
}
