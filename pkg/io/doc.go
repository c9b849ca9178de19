// Package io reads graph files and writes machine-readable reports.
//
// # Graph Files
//
// [ReadGraph] picks a format from the file extension:
//
//   - .json: an object with either "adjacency" or "matrix", or a bare array
//     of neighbor lists
//   - .toml: top-level adjacency = [[...]] or matrix = [[...]]
//   - anything else: plain text, one line per vertex
//
// JSON example:
//
//	{
//	  "name": "path3",
//	  "adjacency": [[1], [0, 2], [1]]
//	}
//
// TOML example:
//
//	name = "k3"
//	matrix = [[0, 1, 1], [1, 0, 1], [1, 1, 0]]
//
// Text example (vertex i is line i; "-" marks a vertex with no neighbors):
//
//	# path on three vertices
//	1
//	0, 2
//	1
//
// Adjacency lists may reference out-of-range vertices; those references are
// dropped and returned in [Loaded].Discarded. A matrix whose rows do not
// match its row count is a CONFIGURATION_ERROR.
//
// # Reports
//
// [WriteReport] writes any result value as indented JSON, the format used by
// the CLI's --json flag.
package io
