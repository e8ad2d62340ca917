package qecc

import (
	"fmt"
	"sort"
)

/*
parityCode is the table-driven engine behind every built-in code. A code is
fully described by its two codewords, its parity checks and the table that
turns a syndrome into the single bit to flip.

Checks are evaluated over the difference between the block and a reference
codeword. Codes whose codewords satisfy every check are linear and always use
the Zero codeword as reference; for them the choice does not matter. Codes
whose codewords do not satisfy the checks name a frame bit outside the
checked region; its value picks the reference codeword.
*/
type parityCode struct {
	name      string
	codewords [2]Block
	frame     int
	checks    [][]int
	table     map[string]int
}

type parityCodeDef struct {
	Name   string
	Zero   []int
	One    []int
	Frame  int
	Checks [][]int
	Table  map[string]int
}

// newParityCode validates a definition and panics when it is inconsistent;
// a broken code table is a programming error, not a runtime condition.
func newParityCode(def parityCodeDef) *parityCode {
	code := &parityCode{
		name:      def.Name,
		codewords: [2]Block{mustBlock(def.Zero...), mustBlock(def.One...)},
		frame:     def.Frame,
		checks:    def.Checks,
		table:     def.Table,
	}

	n := code.codewords[Zero].Len()
	if n == 0 || code.codewords[One].Len() != n {
		panic(fmt.Sprintf("qecc: %s codewords must share a non-zero length", def.Name))
	}
	if code.codewords[Zero].Equal(code.codewords[One]) {
		panic(fmt.Sprintf("qecc: %s codewords must differ", def.Name))
	}
	if code.frame >= n {
		panic(fmt.Sprintf("qecc: %s frame bit %d out of range", def.Name, code.frame))
	}
	if code.frame >= 0 && code.codewords[Zero].At(code.frame) == code.codewords[One].At(code.frame) {
		panic(fmt.Sprintf("qecc: %s codewords agree on frame bit %d", def.Name, code.frame))
	}
	for _, check := range code.checks {
		for _, i := range check {
			if i < 0 || i >= n || i == code.frame {
				panic(fmt.Sprintf("qecc: %s check references bit %d", def.Name, i))
			}
		}
	}
	for key, pos := range code.table {
		if len(key) != len(code.checks) || pos < 0 || pos >= n {
			panic(fmt.Sprintf("qecc: %s table entry %s -> %d is malformed", def.Name, key, pos))
		}
	}
	for _, basis := range []Basis{Zero, One} {
		if s := code.measure(code.codewords[basis]); !s.IsZero() {
			panic(fmt.Sprintf("qecc: %s codeword %v fails its own checks: %v", def.Name, basis, s))
		}
	}

	return code
}

func (c *parityCode) Name() string {
	return c.name
}

func (c *parityCode) BlockLen() int {
	return c.codewords[Zero].Len()
}

func (c *parityCode) SyndromeLen() int {
	return len(c.checks)
}

func (c *parityCode) Encode(basis Basis) (Block, error) {
	if !basis.Valid() {
		return Block{}, fmt.Errorf("%w: %s cannot encode %v", ErrInvalidInput, c.name, basis)
	}
	return c.codewords[basis], nil
}

func (c *parityCode) Syndrome(block Block) (Syndrome, error) {
	if block.Len() != c.BlockLen() {
		return Syndrome{}, fmt.Errorf(
			"%w: %s expects %d bits, got %d", ErrInvalidInput, c.name, c.BlockLen(), block.Len(),
		)
	}
	return c.measure(block), nil
}

func (c *parityCode) measure(block Block) Syndrome {
	diff := block.xor(c.reference(block))
	bits := make([]Bit, len(c.checks))
	for i, check := range c.checks {
		for _, j := range check {
			bits[i] ^= diff.At(j)
		}
	}
	return Syndrome{bits: bits}
}

func (c *parityCode) reference(block Block) Block {
	if c.frame < 0 {
		return c.codewords[Zero]
	}
	if block.At(c.frame) == c.codewords[One].At(c.frame) {
		return c.codewords[One]
	}
	return c.codewords[Zero]
}

func (c *parityCode) Correct(block Block, syndrome Syndrome) (Block, error) {
	if block.Len() != c.BlockLen() || syndrome.Len() != c.SyndromeLen() {
		return Block{}, fmt.Errorf(
			"%w: %s expects %d bits and a %d-check syndrome, got %d and %d",
			ErrInvalidInput, c.name, c.BlockLen(), c.SyndromeLen(), block.Len(), syndrome.Len(),
		)
	}

	if syndrome.IsZero() {
		return block, nil
	}

	pos, ok := c.table[syndrome.key()]
	if !ok {
		return block, fmt.Errorf(
			"%w: %s has no single flip for syndrome %v", ErrUncorrectableSyndrome, c.name, syndrome,
		)
	}
	return block.flip(pos), nil
}

func (c *parityCode) CorrectablePositions() []int {
	positions := make([]int, 0, len(c.table))
	for _, pos := range c.table {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}
