// Package pool provides efficient object pooling for go-argparse
// Used by the parser for reusing per-invocation scratch state and reducing GC
// pressure when the same schema parses many argument lists
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool with automatic cleanup
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T)     // Optional reset function called before reuse
	cleanup func(*T)     // Optional cleanup function for pool eviction
	maxSize int          // Maximum objects to keep (0 = unlimited)
	count   int64        // Current pool size (approximate)
	mutex   sync.RWMutex // Protects count
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
		maxSize: 0, // Unlimited by default
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	// Check max size limit
	if p.maxSize > 0 {
		p.mutex.RLock()
		current := p.count
		p.mutex.RUnlock()

		if current >= int64(p.maxSize) {
			if p.cleanup != nil {
				p.cleanup(obj)
			}
			return
		}
	}

	p.pool.Put(obj)

	if p.maxSize > 0 {
		p.mutex.Lock()
		p.count++
		p.mutex.Unlock()
	}
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// BufferPool provides a specialized pool for byte slices with capacity management
type BufferPool struct {
	pools map[int]*Pool[[]byte] // Pools by capacity bucket
	mutex sync.RWMutex

	// Configuration
	minCap     int   // Minimum capacity
	maxCap     int   // Maximum capacity
	buckets    []int // Capacity buckets
	defaultCap int   // Default capacity
}

// NewBufferPool creates a new buffer pool with capacity-based buckets
func NewBufferPool() *BufferPool {
	buckets := []int{64, 128, 256, 512, 1024, 2048, 4096}

	bp := &BufferPool{
		pools:      make(map[int]*Pool[[]byte]),
		minCap:     64,
		maxCap:     4096,
		buckets:    buckets,
		defaultCap: 256,
	}

	// Initialize pools for each bucket
	for _, cap := range buckets {
		capacity := cap // Capture for closure
		bp.pools[capacity] = NewPoolWithReset(
			func() *[]byte {
				buf := make([]byte, 0, capacity)
				return &buf
			},
			func(buf *[]byte) {
				*buf = (*buf)[:0] // Reset length but keep capacity
			},
		)
	}

	return bp
}

// Get retrieves a buffer with at least the requested capacity
func (bp *BufferPool) Get(minCap int) *[]byte {
	capacity := bp.findBucket(minCap)

	bp.mutex.RLock()
	pool, exists := bp.pools[capacity]
	bp.mutex.RUnlock()

	if !exists {
		// Create buffer directly if outside bucket range
		buf := make([]byte, 0, minCap)
		return &buf
	}

	return pool.Get()
}

// Put returns a buffer to the appropriate pool
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil {
		return
	}

	capacity := cap(*buf)

	// Only pool if within our bucket range
	if capacity < bp.minCap || capacity > bp.maxCap {
		return
	}

	bucketCap := bp.findBucket(capacity)

	bp.mutex.RLock()
	pool, exists := bp.pools[bucketCap]
	bp.mutex.RUnlock()

	if exists {
		pool.Put(buf)
	}
}

// findBucket finds the appropriate capacity bucket for the given size
func (bp *BufferPool) findBucket(minCap int) int {
	for _, bucket := range bp.buckets {
		if bucket >= minCap {
			return bucket
		}
	}
	return bp.maxCap
}

// StringSlicePool provides efficient pooling for string slices
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
	}
}

// Global pool instances for argument parsing
var (
	// Global buffer pool for cache-signature and help-text rendering
	GlobalBufferPool = NewBufferPool()

	// Global string slice pool for argument queues and pass-through lists
	GlobalStringSlicePool = NewStringSlicePool(32)
)

// init pre-warms the global pools so the first parse does not pay for the
// initial allocations
func init() {
	for i := 0; i < 5; i++ {
		buf := GlobalBufferPool.Get(256)
		GlobalBufferPool.Put(buf)
	}

	for i := 0; i < 3; i++ {
		strSlice := GlobalStringSlicePool.Get()
		GlobalStringSlicePool.Put(strSlice)
	}
}

// Convenience functions for common parsing use cases

// GetBuffer retrieves a buffer for temporary rendering operations
func GetBuffer(minCap int) *[]byte {
	return GlobalBufferPool.Get(minCap)
}

// PutBuffer returns a buffer to the global pool
func PutBuffer(buf *[]byte) {
	GlobalBufferPool.Put(buf)
}

// GetStringSlice retrieves a string slice for argument queues
func GetStringSlice() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStringSlice returns a string slice to the global pool
func PutStringSlice(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
