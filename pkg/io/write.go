package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/phipebble/pkg/graph"
)

// WriteReport encodes v as indented JSON and writes it to w.
func WriteReport(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraph writes g as a JSON graph document that [ReadJSON] reads back.
func WriteGraph(w io.Writer, name string, g *graph.Graph) error {
	return WriteReport(w, document{Name: name, Adjacency: g.AdjacencyList()})
}

// ExportGraph writes g to a JSON file at path.
func ExportGraph(path, name string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(f, name, g)
}
