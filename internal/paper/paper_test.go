package paper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScaledIdentity(t *testing.T) {
	got := Scaled(Base, Base.WidthMM, Base.HeightMM)
	if diff := cmp.Diff(Base, got); diff != "" {
		t.Errorf("Scaled to base dimensions differs (-want +got):\n%s", diff)
	}
}

func TestScaledA4(t *testing.T) {
	got := Scaled(Base, 210, 297)
	want := Config{
		WidthMM:      210,
		HeightMM:     297,
		MarginMM:     0,
		GridCols:     165, // round(259 * 210/329)
		GridRows:     120, // round(195 * 297/483)
		FontSizePt:   6.0,
		LineHeightPt: 7.0,
		CharWidthPt:  3.6,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scaled(Base, 210, 297) differs (-want +got):\n%s", diff)
	}
}

func TestScaledGridNeverBelowOne(t *testing.T) {
	got := Scaled(Base, 1, 1)
	if got.GridCols < 1 || got.GridRows < 1 {
		t.Errorf("grid %dx%d, want at least 1x1", got.GridCols, got.GridRows)
	}
}

func TestScaledKeepsMetrics(t *testing.T) {
	got := Scaled(Base, 297, 420)
	if got.FontSizePt != Base.FontSizePt || got.LineHeightPt != Base.LineHeightPt || got.CharWidthPt != Base.CharWidthPt {
		t.Error("font metrics must be copied unchanged from the base")
	}
	if got.MarginMM != Base.MarginMM {
		t.Error("margin must be copied unchanged from the base")
	}
}

func TestFormats(t *testing.T) {
	if len(Names) != len(Formats) {
		t.Fatalf("Names has %d entries, Formats has %d", len(Names), len(Formats))
	}
	for _, name := range Names {
		if _, ok := Formats[name]; !ok {
			t.Errorf("format %q in Names but not in Formats", name)
		}
		if _, ok := Labels[name]; !ok {
			t.Errorf("format %q has no label", name)
		}
	}
	if diff := cmp.Diff(Base, Formats["a3plus"]); diff != "" {
		t.Errorf("a3plus is not the base config (-want +got):\n%s", diff)
	}
}

func TestAspect(t *testing.T) {
	got := Base.Aspect()
	want := Base.CharWidthPt / Base.LineHeightPt
	if got != want {
		t.Errorf("Aspect() = %v, want %v", got, want)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("Aspect() = %v, want a ratio in (0, 1) for a monospace cell", got)
	}
}
