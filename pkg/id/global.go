package id

import "sync"

var (
	globalOnce sync.Once
	globalGen  *Generator
)

func defaultGenerator() *Generator {
	globalOnce.Do(func() { globalGen = NewGenerator() })
	return globalGen
}

// New returns a new ID from the lazily constructed process-wide Generator.
// It is safe for concurrent use.
func New() ID {
	return defaultGenerator().Generate()
}

// NewString returns the canonical string form of a new ID from the
// process-wide Generator.
func NewString() string {
	return New().String()
}
