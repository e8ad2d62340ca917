package qecc

import (
	"fmt"
	"strings"
)

// Basis is the logical value fed to an encoder: the classical stand-in for
// |0⟩ or |1⟩.
type Basis int

const (
	Zero Basis = iota
	One
)

// Valid reports whether b is one of the two recognized basis states.
func (b Basis) Valid() bool {
	return b == Zero || b == One
}

func (b Basis) String() string {
	switch b {
	case Zero:
		return "|0⟩"
	case One:
		return "|1⟩"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// ParseBasis understands "0", "1", "zero", "one", "|0>" and "|1>".
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "zero", "|0>", "|0⟩":
		return Zero, nil
	case "1", "one", "|1>", "|1⟩":
		return One, nil
	}
	return 0, fmt.Errorf("%w: unknown basis %q", ErrInvalidInput, s)
}
