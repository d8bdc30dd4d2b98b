package rocket

import "errors"

// Sentinel errors for the rocket package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("rocket: invalid move notation")
	ErrUnknownReorient = errors.New("rocket: unknown reorientation name")

	// Search configuration errors
	ErrDepthOutOfRange = errors.New("rocket: reorientation depth out of range")
	ErrSequenceTooLong = errors.New("rocket: move sequence too long")
	ErrSequenceEmpty   = errors.New("rocket: move sequence is empty")
)
