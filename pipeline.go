package qecc

import (
	"errors"
	"fmt"
)

// Stage is a step of the encode → corrupt → diagnose → repair → verify run.
type Stage int

const (
	StageIdle Stage = iota
	StageEncoded
	StageCorrupted
	StageDiagnosed
	StageCorrected
	StageVerified
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageEncoded:
		return "encoded"
	case StageCorrupted:
		return "corrupted"
	case StageDiagnosed:
		return "diagnosed"
	case StageCorrected:
		return "corrected"
	case StageVerified:
		return "verified"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// StageError reports the transition that failed and wraps its cause.
type StageError struct {
	Code  string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: entering %s: %v", e.Code, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

/*
Pipeline runs a code through encode, inject, syndrome, correct and verify.
It holds nothing but the registry it resolves code names in, so one Pipeline
serves any number of concurrent runs.
*/
type Pipeline struct {
	registry *Registry
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRegistry resolves code names in r instead of the default registry.
func WithRegistry(r *Registry) PipelineOption {
	return func(p *Pipeline) {
		p.registry = r
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry: defaultRegistry,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Run executes one full run. Invalid input, unknown codes and out-of-range
// positions abort it; an uncorrectable syndrome does not, and comes back as
// a result with Success false and Uncorrectable set.
func (p *Pipeline) Run(codeName string, basis Basis, positions []int) (*CorrectionResult, error) {
	code, err := p.registry.Lookup(codeName)
	if err != nil {
		return nil, err
	}

	// Idle → Encoded
	original, err := code.Encode(basis)
	if err != nil {
		return nil, &StageError{Code: codeName, Stage: StageEncoded, Err: err}
	}
	mustLen(code, "encoded block", original.Len(), code.BlockLen())

	// Encoded → Corrupted
	erroneous, err := Inject(original, positions)
	if err != nil {
		return nil, &StageError{Code: codeName, Stage: StageCorrupted, Err: err}
	}

	// Corrupted → Diagnosed
	syndrome, err := code.Syndrome(erroneous)
	if err != nil {
		return nil, &StageError{Code: codeName, Stage: StageDiagnosed, Err: err}
	}
	mustLen(code, "syndrome", syndrome.Len(), code.SyndromeLen())

	// Diagnosed → Corrected
	uncorrectable := false
	corrected, err := code.Correct(erroneous, syndrome)
	switch {
	case errors.Is(err, ErrUncorrectableSyndrome):
		uncorrectable = true
		corrected = erroneous
	case err != nil:
		return nil, &StageError{Code: codeName, Stage: StageCorrected, Err: err}
	}
	mustLen(code, "corrected block", corrected.Len(), code.BlockLen())

	// Corrected → Verified
	return &CorrectionResult{
		Code:          code.Name(),
		Basis:         basis,
		Positions:     NetPositions(positions),
		Original:      original,
		Erroneous:     erroneous,
		Syndrome:      syndrome,
		Corrected:     corrected,
		Success:       !uncorrectable && corrected.Equal(original),
		Uncorrectable: uncorrectable,
	}, nil
}

// RunQubit resolves q to a basis state before running.
func (p *Pipeline) RunQubit(codeName string, q *Qubit, positions []int) (*CorrectionResult, error) {
	basis, err := q.Basis()
	if err != nil {
		return nil, &StageError{Code: codeName, Stage: StageEncoded, Err: err}
	}
	return p.Run(codeName, basis, positions)
}

var defaultPipeline = NewPipeline()

// Run executes a run against the default registry.
func Run(codeName string, basis Basis, positions []int) (*CorrectionResult, error) {
	return defaultPipeline.Run(codeName, basis, positions)
}

// mustLen panics when a code breaks its own length contract.
func mustLen(code Code, what string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("qecc: %s code produced %s of length %d, declared %d", code.Name(), what, got, want))
	}
}
