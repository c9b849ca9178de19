package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/graph"
)

// Loaded is a graph read from a file.
type Loaded struct {
	// Name is the "name" field of the file, or the file name without its
	// extension.
	Name  string
	Graph *graph.Graph
	// Discarded lists out-of-range neighbor references that were dropped.
	Discarded []graph.Discarded
}

// document is the shared shape of JSON and TOML graph files.
type document struct {
	Name      string  `json:"name,omitempty" toml:"name"`
	Adjacency [][]int `json:"adjacency,omitempty" toml:"adjacency"`
	Matrix    [][]int `json:"matrix,omitempty" toml:"matrix"`
}

// ReadGraph reads a graph file, choosing the format by extension.
func ReadGraph(path string) (*Loaded, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	var l *Loaded
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		l, err = ReadJSON(f)
	case ".toml":
		l, err = ReadTOML(f)
	default:
		l, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if l.Name == "" {
		base := filepath.Base(path)
		l.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return l, nil
}

// ReadJSON decodes a JSON graph document, or a bare array of neighbor lists.
// A bare array that is also a square 0/1 matrix is rejected as ambiguous.
func ReadJSON(r io.Reader) (*Loaded, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read json")
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var lists [][]int
		if err := json.Unmarshal(trimmed, &lists); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode adjacency list")
		}
		if squareBinary(lists) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				`bare array is a square 0/1 matrix; use {"matrix": [...]} or {"adjacency": [...]} to say which`)
		}
		return fromAdjacency("", lists)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json graph")
	}
	return doc.build()
}

// squareBinary reports whether lists reads as an n×n matrix of 0/1 entries.
func squareBinary(lists [][]int) bool {
	if len(lists) == 0 {
		return false
	}
	for _, row := range lists {
		if len(row) != len(lists) {
			return false
		}
		for _, v := range row {
			if v != 0 && v != 1 {
				return false
			}
		}
	}
	return true
}

// ReadTOML decodes a TOML graph document.
func ReadTOML(r io.Reader) (*Loaded, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml graph")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown toml key %q", undecoded[0].String())
	}
	return doc.build()
}

// ReadText parses the line-oriented text format: line i lists the neighbors
// of vertex i separated by whitespace or commas. Everything after '#' is a
// comment, lines that are blank after removing comments are skipped, and a
// line holding only "-" is a vertex with no neighbors.
func ReadText(r io.Reader) (*Loaded, error) {
	var lists [][]int

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "-" {
			lists = append(lists, []int{})
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		nbrs := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: %q is not a vertex index", lineNo, f)
			}
			nbrs = append(nbrs, v)
		}
		lists = append(lists, nbrs)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read text graph")
	}

	return fromAdjacency("", lists)
}

func (doc document) build() (*Loaded, error) {
	switch {
	case doc.Adjacency != nil && doc.Matrix != nil:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graph has both adjacency and matrix")
	case doc.Matrix != nil:
		g, err := graph.FromMatrix(doc.Matrix)
		if err != nil {
			return nil, err
		}
		return &Loaded{Name: doc.Name, Graph: g}, nil
	case doc.Adjacency != nil:
		return fromAdjacency(doc.Name, doc.Adjacency)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graph has neither adjacency nor matrix")
	}
}

func fromAdjacency(name string, lists [][]int) (*Loaded, error) {
	if err := errors.ValidateVertexCount(len(lists)); err != nil {
		return nil, err
	}
	g, dropped := graph.FromAdjacencyList(lists)
	return &Loaded{Name: name, Graph: g, Discarded: dropped}, nil
}
