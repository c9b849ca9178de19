package errors

import (
	"strings"
	"unicode"
)

// MaxVertices bounds the size of graphs accepted from files and the CLI.
// The search is exponential in the pebble count, so anything larger is a typo.
const MaxVertices = 4096

// ValidateVertexCount checks that n is a usable number of vertices.
func ValidateVertexCount(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidGraph, "graph must have at least one vertex")
	}
	if n > MaxVertices {
		return New(ErrCodeInvalidGraph, "graph has %d vertices (max %d)", n, MaxVertices)
	}
	return nil
}

// ValidateTarget checks that target names a vertex of an n-vertex graph.
func ValidateTarget(target, n int) error {
	if target < 0 || target >= n {
		return New(ErrCodeInvalidInput, "target vertex %d out of range [0, %d)", target, n)
	}
	return nil
}

// ValidateDistribution checks that counts is a pebble distribution over an
// n-vertex graph: one non-negative entry per vertex.
func ValidateDistribution(counts []int, n int) error {
	if len(counts) != n {
		return New(ErrCodeInvalidInput, "distribution has %d entries, graph has %d vertices", len(counts), n)
	}
	for v, c := range counts {
		if c < 0 {
			return New(ErrCodeInvalidInput, "vertex %d holds %d pebbles", v, c)
		}
	}
	return nil
}

// ValidatePebbleCount checks that a pebble count is positive.
func ValidatePebbleCount(pebbles int) error {
	if pebbles < 1 {
		return New(ErrCodeInvalidInput, "pebble count must be at least 1, got %d", pebbles)
	}
	return nil
}

// ValidatePebbleRange checks an inclusive sweep range [from, to].
func ValidatePebbleRange(from, to int) error {
	if err := ValidatePebbleCount(from); err != nil {
		return err
	}
	if to < from {
		return New(ErrCodeInvalidInput, "sweep range is empty: from %d > to %d", from, to)
	}
	return nil
}

// ValidatePath validates a graph file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
