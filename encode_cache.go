package addr

import "sync"

// EncodeCache stores canonical encodings keyed by path instance identity. Two
// structurally equal paths held behind distinct pointers occupy distinct
// entries; the cache never inspects path contents.
type EncodeCache interface {
	Get(p *Path) (EncodedPath, bool)
	Set(p *Path, encoded EncodedPath)
}

const defaultEncodeCacheCapacity = 1024

// boundedEncodeCache is the default EncodeCache: a mutex-guarded map that is
// cleared wholesale once it reaches capacity. Entries are write-once per path
// instance and never individually invalidated.
type boundedEncodeCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[*Path]EncodedPath
}

func newBoundedEncodeCache(capacity int) *boundedEncodeCache {
	if capacity <= 0 {
		capacity = defaultEncodeCacheCapacity
	}
	return &boundedEncodeCache{
		capacity: capacity,
		entries:  make(map[*Path]EncodedPath),
	}
}

func (c *boundedEncodeCache) Get(p *Path) (EncodedPath, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	encoded, ok := c.entries[p]
	return encoded, ok
}

func (c *boundedEncodeCache) Set(p *Path, encoded EncodedPath) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[*Path]EncodedPath)
	}
	c.entries[p] = encoded
}

// Encoder memoizes EncodePath per path instance. Callers that encode the same
// *Path repeatedly (dependency trackers, diffing caches) get the identical
// EncodedPath back without re-serializing; callers holding structurally equal
// but distinct instances must not expect a shared entry.
type Encoder struct {
	cache EncodeCache
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithEncodeCache swaps in a caller-supplied cache implementation.
func WithEncodeCache(cache EncodeCache) EncoderOption {
	return func(e *Encoder) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithCacheCapacity bounds the default cache. Ignored when a custom cache is
// supplied via WithEncodeCache.
func WithCacheCapacity(capacity int) EncoderOption {
	return func(e *Encoder) {
		e.cache = newBoundedEncodeCache(capacity)
	}
}

// NewEncoder constructs an Encoder with a bounded identity-keyed cache.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{cache: newBoundedEncodeCache(defaultEncodeCacheCapacity)}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// defaultEncoder backs the package-level Encode for callers that do not
// manage their own cache.
var defaultEncoder = NewEncoder()

// Encode memoizes EncodePath on the process-wide default encoder. Repeated
// calls with the same *Path return the identical EncodedPath without
// re-serializing.
func Encode(p *Path) EncodedPath {
	return defaultEncoder.Encode(p)
}

// Encode returns the canonical encoding of *p, memoized on the pointer. A nil
// path encodes like the empty path.
func (e *Encoder) Encode(p *Path) EncodedPath {
	if p == nil {
		return EncodePath(nil)
	}
	if encoded, ok := e.cache.Get(p); ok {
		return encoded
	}
	encoded := EncodePath(*p)
	e.cache.Set(p, encoded)
	return encoded
}
