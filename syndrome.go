package qecc

// Syndrome is the ordered outcome of a code's parity checks.
type Syndrome struct {
	bits []Bit
}

// NewSyndrome copies bits into a Syndrome.
func NewSyndrome(bits ...Bit) (Syndrome, error) {
	block, err := NewBlock(bits...)
	if err != nil {
		return Syndrome{}, err
	}
	return Syndrome{bits: block.bits}, nil
}

func (s Syndrome) Len() int {
	return len(s.bits)
}

func (s Syndrome) At(i int) Bit {
	return s.bits[i]
}

func (s Syndrome) Bits() []Bit {
	out := make([]Bit, len(s.bits))
	copy(out, s.bits)
	return out
}

func (s Syndrome) Ints() []int {
	return Block{bits: s.bits}.Ints()
}

// Weight is the number of checks that fired.
func (s Syndrome) Weight() int {
	return Block{bits: s.bits}.Weight()
}

// IsZero reports whether no check fired.
func (s Syndrome) IsZero() bool {
	return s.Weight() == 0
}

func (s Syndrome) Equal(other Syndrome) bool {
	return Block{bits: s.bits}.Equal(Block{bits: other.bits})
}

// key is the map key used by correction tables, e.g. "100".
func (s Syndrome) key() string {
	buf := make([]byte, len(s.bits))
	for i, bit := range s.bits {
		buf[i] = '0' + byte(bit)
	}
	return string(buf)
}

func (s Syndrome) String() string {
	return formatBits(s.bits)
}
