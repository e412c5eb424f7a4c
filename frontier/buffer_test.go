package frontier_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/katalvlaran/lvlgraph/frontier"
)

// TestBuffer_SealAndSplit walks a buffer through three frontiers, one of
// them empty, and checks every view of the result.
func TestBuffer_SealAndSplit(t *testing.T) {
	b := frontier.NewBuffer(4)
	b.Append(7)
	b.Seal()
	b.Append(8)
	b.Append(9)
	b.Seal()
	b.Seal() // empty terminating frontier

	if got, want := b.Len(), 3; got != want {
		t.Errorf("Len = %d; want %d", got, want)
	}
	if got, want := b.NumFrontiers(), 3; got != want {
		t.Errorf("NumFrontiers = %d; want %d", got, want)
	}
	if diff := deep.Equal(b.Flat(), []int64{7, 8, 9}); diff != nil {
		t.Errorf("Flat: %v", diff)
	}
	if diff := deep.Equal(b.Sections(), []int64{1, 2, 0}); diff != nil {
		t.Errorf("Sections: %v", diff)
	}
	if diff := deep.Equal(b.Frontiers(), [][]int64{{7}, {8, 9}, {}}); diff != nil {
		t.Errorf("Frontiers: %v", diff)
	}
}

// TestBuffer_ZeroValue confirms the zero Buffer is usable as-is.
func TestBuffer_ZeroValue(t *testing.T) {
	var b frontier.Buffer
	b.Append(1)
	b.Seal()
	if diff := deep.Equal(b.Frontiers(), [][]int64{{1}}); diff != nil {
		t.Errorf("Frontiers: %v", diff)
	}
}

// TestBuffer_UnsealedTail checks that ids appended after the last Seal are
// visible in Flat but excluded from Frontiers.
func TestBuffer_UnsealedTail(t *testing.T) {
	b := frontier.NewBuffer(0)
	b.Append(1)
	b.Seal()
	b.Append(2) // never sealed

	if got, want := b.Len(), 2; got != want {
		t.Errorf("Len = %d; want %d", got, want)
	}
	if diff := deep.Equal(b.Frontiers(), [][]int64{{1}}); diff != nil {
		t.Errorf("Frontiers: %v", diff)
	}
}

// TestSplit_RoundTrip checks that Split inverts the flat+lengths encoding.
func TestSplit_RoundTrip(t *testing.T) {
	flat := []int64{0, 1, 2, 3, 4, 5}
	sections := []int64{1, 0, 3, 2}

	got, err := frontier.Split(flat, sections)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if diff := deep.Equal(got, [][]int64{{0}, {}, {1, 2, 3}, {4, 5}}); diff != nil {
		t.Errorf("Split: %v", diff)
	}

	// re-concatenating must restore the flat sequence
	joined := make([]int64, 0, len(flat))
	for _, f := range got {
		joined = append(joined, f...)
	}
	if diff := deep.Equal(joined, flat); diff != nil {
		t.Errorf("round trip: %v", diff)
	}
}

// TestSplit_Errors covers negative and mismatched section lengths.
func TestSplit_Errors(t *testing.T) {
	if _, err := frontier.Split([]int64{1, 2}, []int64{1}); !errors.Is(err, frontier.ErrSectionMismatch) {
		t.Errorf("short sections: want ErrSectionMismatch, got %v", err)
	}
	if _, err := frontier.Split([]int64{1, 2}, []int64{3, -1}); !errors.Is(err, frontier.ErrSectionMismatch) {
		t.Errorf("negative section: want ErrSectionMismatch, got %v", err)
	}
	if _, err := frontier.Split(nil, nil); err != nil {
		t.Errorf("empty split: unexpected error %v", err)
	}
}
