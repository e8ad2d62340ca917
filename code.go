package qecc

/*
Code is one error-correcting block code. Implementations are stateless and
keep their own invariants: every Block they produce has BlockLen bits and
every Syndrome has SyndromeLen bits.
*/
type Code interface {
	Name() string
	BlockLen() int
	SyndromeLen() int

	// Encode maps a basis state onto the code's block. Values other than
	// Zero and One fail with ErrInvalidInput.
	Encode(basis Basis) (Block, error)

	// Syndrome evaluates the code's parity checks over block.
	Syndrome(block Block) (Syndrome, error)

	// Correct applies the flip the syndrome points at. A syndrome outside the
	// correction table returns block unchanged together with an error wrapping
	// ErrUncorrectableSyndrome.
	Correct(block Block, syndrome Syndrome) (Block, error)

	// CorrectablePositions lists the bit positions a single error on which
	// the code is guaranteed to repair.
	CorrectablePositions() []int
}
