package qecc

import (
	"fmt"
	"strings"
)

// Bit is a single classical stand-in for a basis-state qubit.
type Bit uint8

const (
	Off Bit = 0
	On  Bit = 1
)

/*
Block is the redundant encoding of one logical basis state. A Block never
changes once it has been built; every operation that alters bits returns a
fresh Block and leaves the receiver untouched.
*/
type Block struct {
	bits []Bit
}

// NewBlock copies bits into a new Block, rejecting anything outside {0, 1}.
func NewBlock(bits ...Bit) (Block, error) {
	for i, b := range bits {
		if b > On {
			return Block{}, fmt.Errorf("%w: bit %d has value %d", ErrInvalidInput, i, b)
		}
	}

	out := make([]Bit, len(bits))
	copy(out, bits)
	return Block{bits: out}, nil
}

// BlockFromInts is a convenience for tests and the CLI.
func BlockFromInts(values ...int) (Block, error) {
	bits := make([]Bit, len(values))
	for i, v := range values {
		if v != 0 && v != 1 {
			return Block{}, fmt.Errorf("%w: bit %d has value %d", ErrInvalidInput, i, v)
		}
		bits[i] = Bit(v)
	}
	return Block{bits: bits}, nil
}

// mustBlock is used for the fixed codeword tables.
func mustBlock(values ...int) Block {
	block, err := BlockFromInts(values...)
	if err != nil {
		panic(err)
	}
	return block
}

func (b Block) Len() int {
	return len(b.bits)
}

func (b Block) At(i int) Bit {
	return b.bits[i]
}

// Bits returns a copy of the underlying bits.
func (b Block) Bits() []Bit {
	out := make([]Bit, len(b.bits))
	copy(out, b.bits)
	return out
}

// Ints returns the bits as plain integers, which is what reports serialize.
func (b Block) Ints() []int {
	out := make([]int, len(b.bits))
	for i, bit := range b.bits {
		out[i] = int(bit)
	}
	return out
}

// Weight counts the bits set to 1.
func (b Block) Weight() int {
	weight := 0
	for _, bit := range b.bits {
		weight += int(bit)
	}
	return weight
}

func (b Block) Equal(other Block) bool {
	if len(b.bits) != len(other.bits) {
		return false
	}
	for i := range b.bits {
		if b.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// xor returns the bitwise difference of two blocks of equal length.
func (b Block) xor(other Block) Block {
	out := make([]Bit, len(b.bits))
	for i := range b.bits {
		out[i] = b.bits[i] ^ other.bits[i]
	}
	return Block{bits: out}
}

// flip returns a copy with every listed index inverted. Callers validate the
// indices first.
func (b Block) flip(indices ...int) Block {
	out := b.Bits()
	for _, i := range indices {
		out[i] ^= On
	}
	return Block{bits: out}
}

func (b Block) String() string {
	return formatBits(b.bits)
}

func formatBits(bits []Bit) string {
	parts := make([]string, len(bits))
	for i, bit := range bits {
		parts[i] = fmt.Sprintf("%d", bit)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
