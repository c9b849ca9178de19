// Package cache stores sufficiency verdicts and sweep results between runs.
//
// Verdicts are deterministic for a given graph, pebble count and set of search
// bounds, so they can be reused indefinitely. The cache is keyed by a hash of
// the graph's adjacency matrix together with everything that can change the
// outcome of a check.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entries under a local directory (the CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// # Keys
//
// [Keyer] builds keys; [ScopedKeyer] prefixes them so several users or
// projects can share one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false, err == nil), not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// TTLs for cached results. Both are long because results never go stale for
// fixed search bounds; the expiry only keeps the cache from growing forever.
const (
	TTLVerdict = 30 * 24 * time.Hour
	TTLSweep   = 30 * 24 * time.Hour
)

// Key types reported to cache hooks.
const (
	KeyTypeVerdict = "verdict"
	KeyTypeSweep   = "sweep"
)

// VerdictKeyOpts holds everything besides the graph that determines a verdict.
type VerdictKeyOpts struct {
	Pebbles int    `json:"pebbles"`
	Seed    uint64 `json:"seed"`
	PhiCap  int    `json:"phi_cap"`
	BFSCap  int    `json:"bfs_cap"`
}

// SweepKeyOpts holds everything besides the graph that determines a sweep.
type SweepKeyOpts struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	StopAtFirst bool   `json:"stop_at_first"`
	Seed        uint64 `json:"seed"`
	PhiCap      int    `json:"phi_cap"`
	BFSCap      int    `json:"bfs_cap"`
}

// Keyer generates cache keys.
type Keyer interface {
	// VerdictKey returns the key for one pebble count on a graph.
	VerdictKey(graphHash string, opts VerdictKeyOpts) string

	// SweepKey returns the key for a pebble-count sweep on a graph.
	SweepKey(graphHash string, opts SweepKeyOpts) string
}

// DefaultKeyer hashes the key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// VerdictKey returns "verdict:<graphHash>:<hash(opts)>".
func (DefaultKeyer) VerdictKey(graphHash string, opts VerdictKeyOpts) string {
	return hashKey(KeyTypeVerdict+":"+graphHash, opts)
}

// SweepKey returns "sweep:<graphHash>:<hash(opts)>".
func (DefaultKeyer) SweepKey(graphHash string, opts SweepKeyOpts) string {
	return hashKey(KeyTypeSweep+":"+graphHash, opts)
}

var _ Keyer = DefaultKeyer{}
