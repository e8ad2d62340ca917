package qecc

// SteaneName is the registry name of the simplified Steane-style code.
const SteaneName = "steane"

/*
NewSteaneCode returns a reduced 7-bit Steane-style code with a single group
of three bit-flip checks:

	check0 = b0 ⊕ b1 ⊕ b3
	check1 = b2 ⊕ b3 ⊕ b5
	check2 = b1 ⊕ b4 ⊕ b5

Both codewords satisfy all three checks. Only the single-check syndromes are
corrected, each pointing at the one bit that fires that check alone. Errors
on bits 1, 3 and 5 fire two checks and are detected but not repaired; bit 6
is not covered by any check.
*/
func NewSteaneCode() Code {
	return newParityCode(parityCodeDef{
		Name:   SteaneName,
		Zero:   []int{0, 0, 0, 0, 0, 0, 0},
		One:    []int{1, 1, 1, 0, 0, 1, 1},
		Frame:  -1,
		Checks: [][]int{{0, 1, 3}, {2, 3, 5}, {1, 4, 5}},
		Table: map[string]int{
			"100": 0,
			"010": 2,
			"001": 4,
		},
	})
}
