package cache

// ScopedKeyer wraps a Keyer with a prefix so that several projects or users
// can share one backend without seeing each other's entries.
//
// Example usage:
//
//	// Keys for a shared Redis instance
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "phipebble:lab42:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// VerdictKey generates a prefixed verdict key.
func (k *ScopedKeyer) VerdictKey(graphHash string, opts VerdictKeyOpts) string {
	return k.prefix + k.inner.VerdictKey(graphHash, opts)
}

// SweepKey generates a prefixed sweep key.
func (k *ScopedKeyer) SweepKey(graphHash string, opts SweepKeyOpts) string {
	return k.prefix + k.inner.SweepKey(graphHash, opts)
}
