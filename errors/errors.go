// Package errors defines all exported error sentinels for the hashsearch module.
//
// Both the top-level hashsearch package and the corpus package import from
// here, so errors.Is checks work across package boundaries.
package errors

import "errors"

// Dispatch errors
var (
	ErrUnknownAlgorithm  = errors.New("hashsearch: unknown hash algorithm")
	ErrUnknownConvention = errors.New("hashsearch: unknown search convention")
)

// Spread errors
var (
	ErrInvalidBuckets = errors.New("hashsearch: bucket count must be positive")
)

// Corpus errors
var (
	ErrNotFound       = errors.New("hashsearch: key not found")
	ErrCorpusClosed   = errors.New("hashsearch: corpus is closed")
	ErrEmptyCorpus    = errors.New("hashsearch: corpus has no keys")
	ErrUnsortedCorpus = errors.New("hashsearch: corpus keys are not sorted")
	ErrIndexRange     = errors.New("hashsearch: line index out of range")
)

// Configuration errors
var (
	ErrInvalidConfig = errors.New("hashsearch: invalid configuration")
)
