package membuf

import "sync"

const (
	// poolSizeMin is the smallest pooled size class.
	poolSizeMin = 2 << 10
	// poolSizeMax is the largest pooled size class. Regions above it come
	// straight from the heap, or from the platform allocator when large
	// enough.
	poolSizeMax = 32 << 10
	// largeThreshold is the size at which allocation switches to the
	// platform allocator on systems that have one.
	largeThreshold = 256 << 10
)

var pools = createPools()

func createPools() []*sync.Pool {
	var ps []*sync.Pool
	for size := poolSizeMin; size <= poolSizeMax; size <<= 1 {
		sz := size
		ps = append(ps, &sync.Pool{
			New: func() interface{} {
				return make([]byte, sz)
			},
		})
	}
	return ps
}

// poolIndex returns the index of the smallest size class that fits n, or
// -1 when n is too large to pool.
func poolIndex(n int) int {
	idx := 0
	for size := poolSizeMin; size <= poolSizeMax; size <<= 1 {
		if n <= size {
			return idx
		}
		idx++
	}
	return -1
}

// alloc obtains a zeroed region of exactly n bytes, together with the
// routine that returns the region to its origin. A nil routine means the
// region is plain garbage-collected memory.
func alloc(n int) ([]byte, func([]byte), error) {
	switch {
	case n == 0:
		return []byte{}, nil, nil
	case n >= largeThreshold:
		return allocLarge(n)
	case n > poolSizeMax:
		return make([]byte, n), nil, nil
	default:
		idx := poolIndex(n)
		v := pools[idx].Get().([]byte)[:n]
		// Pooled memory is recycled, so it must be scrubbed before
		// hand-out to keep initial contents deterministic.
		clear(v)
		return v, func(p []byte) {
			pools[idx].Put(p[:cap(p)])
		}, nil
	}
}
