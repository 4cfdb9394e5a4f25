package tex

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/numposter/numposter/internal/scheme"
)

func TestShadeRowScenario(t *testing.T) {
	// Intensities 0 and 0 share level 0, 255 lands on the top level, so
	// "AB" merges into one run and "C" starts another.
	got := ShadeRow("ABC", []uint8{0, 0, 255}, scheme.Schemes["print"], 1)
	want := []Run{
		{Color: "black!20", Text: "AB"},
		{Color: "black!100", Text: "C"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ShadeRow differs (-want +got):\n%s", diff)
	}
}

func TestShadeRowMergesEqualLevels(t *testing.T) {
	// 10 and 11 differ in raw intensity but round to the same level, so
	// they must land in the same run.
	got := ShadeRow("xy", []uint8{10, 11}, scheme.Schemes["print"], 20)
	if len(got) != 1 {
		t.Fatalf("got %d runs, want 1: %v", len(got), got)
	}
	if got[0].Text != "xy" {
		t.Errorf("run text = %q, want %q", got[0].Text, "xy")
	}
}

func TestShadeRowRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphabet := "0123456789 ->=|x?&%#_{}\\"
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(120) + 1
		chars := make([]byte, n)
		maskRow := make([]uint8, n)
		for i := range chars {
			chars[i] = alphabet[r.Intn(len(alphabet))]
			maskRow[i] = uint8(r.Intn(256))
		}
		row := string(chars)

		runs := ShadeRow(row, maskRow, scheme.Schemes["matrix"], 20)
		var joined strings.Builder
		for _, run := range runs {
			joined.WriteString(run.Text)
		}
		if joined.String() != row {
			t.Fatalf("round trip failed:\n row: %q\n got: %q", row, joined.String())
		}
		if len(runs) > n {
			t.Fatalf("%d runs for a %d-character row", len(runs), n)
		}
		for i := 1; i < len(runs); i++ {
			if runs[i].Color == runs[i-1].Color {
				t.Fatalf("adjacent runs %d and %d share color %q", i-1, i, runs[i].Color)
			}
		}
	}
}

func TestShadeRowMonotoneMask(t *testing.T) {
	// Over a non-decreasing mask, runs and distinct keys coincide.
	row := strings.Repeat("a", 256)
	maskRow := make([]uint8, 256)
	for i := range maskRow {
		maskRow[i] = uint8(i)
	}
	runs := ShadeRow(row, maskRow, scheme.Schemes["print"], 20)
	distinct := map[string]bool{}
	sch := scheme.Schemes["print"]
	for _, v := range maskRow {
		distinct[sch.ColorFor(v, 20)] = true
	}
	if len(runs) != len(distinct) {
		t.Errorf("got %d runs, want %d (one per distinct key)", len(runs), len(distinct))
	}
}

func TestShadeRowEmpty(t *testing.T) {
	if runs := ShadeRow("", nil, scheme.Schemes["print"], 20); runs != nil {
		t.Errorf("empty row produced runs: %v", runs)
	}
}

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{`\`, `\textbackslash `},
		{"&", `\&`},
		{"%", `\%`},
		{"#", `\#`},
		{"_", `\_`},
		{"{", `\{`},
		{"}", `\}`},
		{"9x12=108", "9x12=108"},
		{"a&b%c", `a\&b\%c`},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestShadedLineEscapesInsideRuns(t *testing.T) {
	got := ShadedLine("a%b", []uint8{0, 0, 0}, scheme.Schemes["print"], 1)
	want := `\textcolor{black!20}{a\%b}`
	if got != want {
		t.Errorf("ShadedLine = %q, want %q", got, want)
	}
}
