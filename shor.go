package qecc

// ShorName is the registry name of the Shor-style code.
const ShorName = "shor"

/*
NewShorCode returns the reduced Shor-style code over an 8-bit block.

|0⟩ encodes as a single 1 at index 0 and |1⟩ as a single 1 at index 4. Only
the first three positions carry parity checks, one per position, each
comparing the bit against the codeword selected by the one-pattern bit at
index 4. The remaining positions are the redundancy a phase-flip layer would
use; they are not checked here.

	(1,0,0) -> flip bit 0
	(0,1,0) -> flip bit 1
	(0,0,1) -> flip bit 2

Any other non-zero syndrome means more than one of the checked bits is wrong
and is reported as uncorrectable.
*/
func NewShorCode() Code {
	return newParityCode(parityCodeDef{
		Name:   ShorName,
		Zero:   []int{1, 0, 0, 0, 0, 0, 0, 0},
		One:    []int{0, 0, 0, 0, 1, 0, 0, 0},
		Frame:  4,
		Checks: [][]int{{0}, {1}, {2}},
		Table: map[string]int{
			"100": 0,
			"010": 1,
			"001": 2,
		},
	})
}
