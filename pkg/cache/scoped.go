package cache

// ScopedKeyer wraps a Keyer with a prefix so that answers computed by
// different solver builds do not collide in a shared cache directory.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
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

// AnswerKey generates a prefixed answer key.
func (k *ScopedKeyer) AnswerKey(day, part int, inputHash string) string {
	return k.prefix + k.inner.AnswerKey(day, part, inputHash)
}
