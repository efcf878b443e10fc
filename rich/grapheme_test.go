package rich

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClusterEnds(t *testing.T) {
	tests := []struct {
		text string
		want []int
		trim string
	}{
		{"", nil, ""},
		{"abc", []int{1, 2, 3}, "ab"},
		{"e\u0301x", []int{3, 4}, "e\u0301"},
		{"xe\u0301", []int{1, 4}, "x"},
		{"\U0001F1EF\U0001F1F5", []int{8}, ""},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, clusterEnds([]byte(tt.text))); diff != "" {
			t.Errorf("clusterEnds(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
		if got := string(trimLastCluster([]byte(tt.text))); got != tt.trim {
			t.Errorf("trimLastCluster(%q) = %q, want %q", tt.text, got, tt.trim)
		}
	}
}

func TestLayoutCharWrapKeepsClusters(t *testing.T) {
	l := testEngine().Layout(Plain("e\u0301xy"), image.Pt(10, 100), WrapChar, 0)

	// The two-rune cluster is wider than the line but is never split.
	want := []lineRange{
		{Start: 0, End: 2, X: 0, Y: 0, Width: 20, Height: 16},
		{Start: 2, End: 3, X: 0, Y: 16, Width: 10, Height: 16},
		{Start: 3, End: 4, X: 0, Y: 32, Width: 10, Height: 16},
	}
	if diff := cmp.Diff(want, ranges(l)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
