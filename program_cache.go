package addr

import "sync"

// ProgramCache stores compiled predicate programs keyed by expression string.
// Implementations must be safe for concurrent use.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// NewProgramCache returns a ProgramCache backed by a sync.Map.
func NewProgramCache() ProgramCache {
	return &syncProgramCache{}
}

type syncProgramCache struct {
	entries sync.Map
}

func (c *syncProgramCache) Get(key string) (any, bool) {
	return c.entries.Load(key)
}

func (c *syncProgramCache) Set(key string, value any) {
	c.entries.Store(key, value)
}
