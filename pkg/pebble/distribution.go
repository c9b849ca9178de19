package pebble

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/phipebble/pkg/errors"
)

// Distribution is a pebble count per vertex, indexed by vertex number.
type Distribution []int

// Key is an immutable, comparable encoding of a Distribution, suitable as a
// map key. Two distributions have the same Key exactly when they are equal.
type Key string

// Total returns the number of pebbles on the graph.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c
	}
	return total
}

// Clone returns an independent copy of d.
func (d Distribution) Clone() Distribution { return slices.Clone(d) }

// Equal reports whether d and other hold the same counts on the same vertices.
func (d Distribution) Equal(other Distribution) bool { return slices.Equal(d, other) }

// Key returns the canonical map key for d.
func (d Distribution) Key() Key {
	buf := make([]byte, 0, len(d)+2)
	for _, c := range d {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	return Key(buf)
}

// Move returns the distribution after a standard pebbling move from u to v:
// two pebbles leave u and one arrives at v. d is not modified. The caller is
// responsible for u holding at least two pebbles and v being a neighbor.
func (d Distribution) Move(u, v int) Distribution {
	next := d.Clone()
	next[u] -= 2
	next[v]++
	return next
}

// String formats d as "[2 0 1]".
func (d Distribution) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParseDistribution parses a comma or space separated list of counts,
// e.g. "2,0,1" or "2 0 1".
func ParseDistribution(s string) (Distribution, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	d := make(Distribution, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "distribution entry %d", i)
		}
		d[i] = c
	}
	return d, nil
}
