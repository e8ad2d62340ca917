package qecc

import "errors"

var (
	// ErrInvalidInput is returned for a basis value that is not one of the
	// recognized constants, or for a malformed block.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCode is returned when a code name is not registered.
	ErrUnsupportedCode = errors.New("unsupported error correction code")

	// ErrPositionOutOfRange is returned when an error position falls outside
	// the block.
	ErrPositionOutOfRange = errors.New("error position out of range")

	// ErrUncorrectableSyndrome marks a syndrome the code detects but cannot
	// resolve to a single flip. Runs report it through CorrectionResult
	// rather than failing.
	ErrUncorrectableSyndrome = errors.New("uncorrectable syndrome")

	ErrDuplicateCode  = errors.New("code already registered")
	ErrRegistrySealed = errors.New("registry is sealed")
)
