package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange indicates a document index outside [0, N).
	ErrOutOfRange = errors.New("index out of range")

	// ErrDataLoad indicates the document source is missing, unreadable or malformed.
	// The CLI treats it as fatal.
	ErrDataLoad = errors.New("data load failed")

	// ErrEmptyVocabulary indicates document frequency pruning removed every term.
	ErrEmptyVocabulary = errors.New("no terms remain after pruning")

	// ErrCorpusNotLoaded indicates a service was used before a corpus was loaded.
	ErrCorpusNotLoaded = errors.New("corpus not loaded")

	// ErrUnsupportedType indicates an unknown analyser or corpus source.
	ErrUnsupportedType = errors.New("unsupported type")
)

// RangeError reports an index outside the table it was checked against.
// It matches ErrOutOfRange under errors.Is.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrOutOfRange, e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// OutOfRange returns a RangeError for index in a table of size documents.
func OutOfRange(index, size int) error {
	return &RangeError{Index: index, Size: size}
}
