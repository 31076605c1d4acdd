package game

import "github.com/vovakirdan/blockdrop/internal/core"

// kickOffsets returns the horizontal offsets tried after a rotation collides,
// in order. Each offset is applied on top of the previous ones, so the piece
// visits x+1, x-1, x+2, x-2, ...
//
// The sequence is 1, -2, 3, -4, ... and stops as soon as the offset that would
// follow exceeds width. The placement reached by the last applied offset is
// never tested in that case, so the list holds at most width entries.
func kickOffsets(width int) []int {
	offsets := make([]int, 0, max(width, 0))
	offset := 1
	for attempt := 0; attempt < width; attempt++ {
		next := -(offset + core.Sign(offset))
		if next > width {
			break
		}
		offsets = append(offsets, offset)
		offset = next
	}
	return offsets
}
