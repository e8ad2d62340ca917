package qecc

import "fmt"

// Outcome classifies a finished run.
type Outcome int

const (
	// OutcomeClean: no net error was injected and the block verified.
	OutcomeClean Outcome = iota
	// OutcomeCorrected: errors were injected and repaired.
	OutcomeCorrected
	// OutcomeDetected: the syndrome flagged an error the code cannot repair.
	OutcomeDetected
	// OutcomeUndetected: the corrected block differs from the original and
	// nothing flagged it.
	OutcomeUndetected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeCorrected:
		return "corrected"
	case OutcomeDetected:
		return "detected"
	case OutcomeUndetected:
		return "undetected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

/*
CorrectionResult is everything one pipeline run produced. It is built once at
the end of a run and never modified afterwards.
*/
type CorrectionResult struct {
	Code      string
	Basis     Basis
	Positions []int // net error positions after duplicate cancellation

	Original  Block
	Erroneous Block
	Syndrome  Syndrome
	Corrected Block

	Success       bool
	Uncorrectable bool
}

func (r *CorrectionResult) Outcome() Outcome {
	switch {
	case r.Uncorrectable:
		return OutcomeDetected
	case r.Success && len(r.Positions) == 0:
		return OutcomeClean
	case r.Success:
		return OutcomeCorrected
	default:
		return OutcomeUndetected
	}
}

// Err returns an error wrapping ErrUncorrectableSyndrome when the run
// detected an error it could not repair, and nil otherwise.
func (r *CorrectionResult) Err() error {
	if !r.Uncorrectable {
		return nil
	}
	return fmt.Errorf("%w: %s syndrome %v", ErrUncorrectableSyndrome, r.Code, r.Syndrome)
}
