package qecc

const (
	RepetitionName = "repetition"
	ParityName     = "parity"
)

// NewRepetitionCode returns the three-bit repetition code, correcting any
// single bit flip through two neighbouring parity checks.
func NewRepetitionCode() Code {
	return newParityCode(parityCodeDef{
		Name:   RepetitionName,
		Zero:   []int{0, 0, 0},
		One:    []int{1, 1, 1},
		Frame:  -1,
		Checks: [][]int{{0, 1}, {1, 2}},
		Table: map[string]int{
			"10": 0,
			"11": 1,
			"01": 2,
		},
	})
}

// NewParityCode returns a four-bit code with one global parity check. It
// detects any odd number of flips and blames bit 0 for all of them, so only
// a flip of bit 0 is repaired.
func NewParityCode() Code {
	return newParityCode(parityCodeDef{
		Name:   ParityName,
		Zero:   []int{0, 0, 0, 0},
		One:    []int{1, 1, 0, 0},
		Frame:  -1,
		Checks: [][]int{{0, 1, 2, 3}},
		Table:  map[string]int{"1": 0},
	})
}
