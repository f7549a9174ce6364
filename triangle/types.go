// Package triangle defines options, results and errors for the max-path solver.
package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTriangle indicates a triangle without rows.
	ErrEmptyTriangle = errors.New("triangle: input must have at least one row")

	// ErrMalformedRow indicates row i does not hold i+1 values.
	ErrMalformedRow = errors.New("triangle: malformed row")

	// ErrPathNeedsMatrix indicates path recovery requested in SingleRow mode.
	ErrPathNeedsMatrix = errors.New("triangle: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadInput indicates invalid generator arguments or options.
	ErrBadInput = errors.New("triangle: invalid input")

	// ErrParse indicates a malformed input line.
	ErrParse = errors.New("triangle: parse failure")
)

// Triangle holds rows of values; row i has i+1 entries.
type Triangle [][]int

// Rows returns the number of rows.
func (t Triangle) Rows() int { return len(t) }

// Validate checks the triangular shape.
func (t Triangle) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTriangle
	}
	for i, row := range t {
		if len(row) != i+1 {
			return &RowError{Row: i, Want: i + 1, Got: len(row)}
		}
	}
	return nil
}

// RowError reports a row of the wrong width. Row is 0-based.
type RowError struct {
	Row, Want, Got int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("triangle: row %d has %d values, want %d", e.Row, e.Got, e.Want)
}

// Unwrap returns ErrMalformedRow.
func (e *RowError) Unwrap() error { return ErrMalformedRow }

// MemoryMode controls how MaxPath stores accumulated sums.
//
//   - FullMatrix: keep an accumulated copy of every row. Supports path
//     recovery. Memory: O(N).
//   - SingleRow: keep one rolling row. Total only. Memory: O(R).
type MemoryMode int

const (
	// FullMatrix keeps every accumulated row.
	FullMatrix MemoryMode = iota

	// SingleRow keeps one rolling row.
	SingleRow
)

// Options configures MaxPath.
//
// Fields:
//   - MemoryMode: FullMatrix or SingleRow.
//   - ReturnPath: fill Result.Path and Result.Values. Requires FullMatrix.
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
}

// DefaultOptions returns FullMatrix with path recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix, ReturnPath: true}
}

// Result is the outcome of MaxPath.
//   - Total:  maximum path sum.
//   - Path:   column index chosen on each row (nil without ReturnPath).
//   - Values: original node values along Path.
type Result struct {
	Total  int
	Path   []int
	Values []int
}
