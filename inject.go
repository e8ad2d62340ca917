package qecc

import (
	"fmt"
	"sort"
)

/*
Inject flips the bits at positions and returns the corrupted copy. Positions
behave as a toggle set: an index listed an even number of times cancels out.
Every position must lie inside the block, otherwise nothing is flipped and
ErrPositionOutOfRange is returned.
*/
func Inject(block Block, positions []int) (Block, error) {
	for _, pos := range positions {
		if pos < 0 || pos >= block.Len() {
			return Block{}, fmt.Errorf(
				"%w: position %d, block has %d bits", ErrPositionOutOfRange, pos, block.Len(),
			)
		}
	}

	return block.flip(NetPositions(positions)...), nil
}

// NetPositions reduces positions to the sorted indices listed an odd number
// of times.
func NetPositions(positions []int) []int {
	odd := make(map[int]bool, len(positions))
	for _, pos := range positions {
		odd[pos] = !odd[pos]
	}

	net := make([]int, 0, len(odd))
	for pos, flipped := range odd {
		if flipped {
			net = append(net, pos)
		}
	}
	sort.Ints(net)
	return net
}
