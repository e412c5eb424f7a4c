// Package frontier implements the frontier Buffer and the flat+lengths
// wire codec used at the traversal boundary.
package frontier

import (
	"errors"
	"fmt"
)

// ErrSectionMismatch is returned by Split when the section lengths do not
// describe the flat sequence (negative length, or sum ≠ sequence length).
var ErrSectionMismatch = errors.New("frontier: section lengths do not match sequence")

// Buffer accumulates ids into an open frontier; Seal closes the current
// frontier (possibly empty) and starts the next one. The zero value is
// ready to use.
type Buffer struct {
	flat     []int64
	sections []int64
	open     int64 // ids appended since the last Seal
}

// NewBuffer returns a Buffer with capacity hints for n ids.
func NewBuffer(n int64) *Buffer {
	if n < 0 {
		n = 0
	}

	return &Buffer{flat: make([]int64, 0, n)}
}

// Append adds id to the currently open frontier.
func (b *Buffer) Append(id int64) {
	b.flat = append(b.flat, id)
	b.open++
}

// Seal closes the open frontier, recording its length as the next section.
// Sealing with no appended ids records a legitimate empty frontier.
func (b *Buffer) Seal() {
	b.sections = append(b.sections, b.open)
	b.open = 0
}

// Len reports the total number of ids appended so far.
func (b *Buffer) Len() int { return len(b.flat) }

// NumFrontiers reports the number of sealed frontiers.
func (b *Buffer) NumFrontiers() int { return len(b.sections) }

// Flat returns the flat id sequence across all frontiers (wire shape).
// The slice is shared with the buffer and must not be modified.
func (b *Buffer) Flat() []int64 { return b.flat }

// Sections returns the sealed frontier lengths in order (wire shape).
// The slice is shared with the buffer and must not be modified.
func (b *Buffer) Sections() []int64 { return b.sections }

// Frontiers splits the sealed output into per-frontier subslices of the
// flat sequence. Ids appended after the last Seal are not included.
func (b *Buffer) Frontiers() [][]int64 {
	out := make([][]int64, len(b.sections))
	var off int64
	for i, n := range b.sections {
		out[i] = b.flat[off : off+n : off+n]
		off += n
	}

	return out
}

// Split decodes the wire shape: it partitions flat into subslices of the
// given section lengths, in order. Returns ErrSectionMismatch if any length
// is negative or the lengths do not sum to len(flat).
func Split(flat []int64, sections []int64) ([][]int64, error) {
	var total int64
	for i, n := range sections {
		if n < 0 {
			return nil, fmt.Errorf("%w: section %d is negative (%d)", ErrSectionMismatch, i, n)
		}
		total += n
	}
	if total != int64(len(flat)) {
		return nil, fmt.Errorf("%w: sections sum to %d, sequence has %d ids", ErrSectionMismatch, total, len(flat))
	}

	out := make([][]int64, len(sections))
	var off int64
	for i, n := range sections {
		out[i] = flat[off : off+n : off+n]
		off += n
	}

	return out, nil
}
