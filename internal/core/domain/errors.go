package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Returned when a caller asks for a specific section, pipe or
	// equipment identifier that is absent from the parsed data.
	// An entire section kind missing from the source file is NOT
	// ErrNotFound; kind accessors return an empty table instead.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFile indicates the source file is not a .inp file.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrNoSections indicates the source file contained no recognizable
	// section markers. Load treats this as a valid empty result; strict
	// consumers may surface it as a failure.
	ErrNoSections = errors.New("no recognizable sections")
)
