package qecc

import (
	"fmt"
	"math"
)

/*
Qubit holds the two amplitudes of a single-qubit state. Encoders only accept
the two basis vectors, so a Qubit is useful as input only once it resolves to
exactly (1, 0) or (0, 1).
*/
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

// BasisQubit returns the indicator vector for b.
func BasisQubit(b Basis) *Qubit {
	if b == One {
		return NewQubit(0, 1)
	}
	return NewQubit(1, 0)
}

func (q *Qubit) ApplyHadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) / complex(math.Sqrt(2), 0)
	newBeta := (q.alpha - q.beta) / complex(math.Sqrt(2), 0)
	q.alpha = newAlpha
	q.beta = newBeta
}

// Basis resolves the qubit to a basis state. Anything other than the exact
// indicator vectors, superpositions included, is rejected.
func (q *Qubit) Basis() (Basis, error) {
	if q == nil {
		return 0, fmt.Errorf("%w: nil qubit", ErrInvalidInput)
	}

	switch {
	case q.alpha == 1 && q.beta == 0:
		return Zero, nil
	case q.alpha == 0 && q.beta == 1:
		return One, nil
	}
	return 0, fmt.Errorf("%w: qubit (%v, %v) is not a basis state", ErrInvalidInput, q.alpha, q.beta)
}
