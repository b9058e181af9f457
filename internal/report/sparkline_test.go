package report

import "testing"

func TestSparklineSpansScale(t *testing.T) {
	out := Sparkline([]float64{-1, 0, 1})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
	if out[0] != sparkChars[0] {
		t.Fatalf("lowest value must use lowest glyph: %q", out)
	}
	if out[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("highest value must use highest glyph: %q", out)
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	out := Sparkline([]float64{0.5, 0.5, 0.5, 0.5})
	if len(out) != 4 {
		t.Fatalf("expected 4 chars, got %q", out)
	}
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			t.Fatalf("flat series must render uniformly: %q", out)
		}
	}
}

func TestSparklineEmpty(t *testing.T) {
	if out := Sparkline(nil); out != "" {
		t.Fatalf("expected empty sparkline, got %q", out)
	}
}
