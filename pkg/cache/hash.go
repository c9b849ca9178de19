package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// GraphHash hashes an adjacency matrix. Graphs with the same vertex numbering
// and edge set hash identically however they were loaded.
func GraphHash(matrix [][]int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d\n", len(matrix))
	for _, row := range matrix {
		line := make([]byte, len(row)+1)
		for j, adj := range row {
			line[j] = '0'
			if adj != 0 {
				line[j] = '1'
			}
		}
		line[len(row)] = '\n'
		h.Write(line)
	}
	return hex.EncodeToString(h.Sum(nil))
}
