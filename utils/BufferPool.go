package utils

import (
	"math/bits"
	"sync"
)

// BufferSizeClass lists the capacities the pool hands out. Packed arrays of
// up to 15420 words fit the largest class.
var BufferSizeClass = [...]int{64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

const (
	minClassShift = 6
	maxClassSize  = 32768
)

// SizeIndex returns the smallest class holding n bytes, or -1.
func SizeIndex(n int) int {
	if n <= 0 || n > maxClassSize {
		return -1
	}
	if n <= 1<<minClassShift {
		return 0
	}
	return bits.Len(uint(n-1)) - minClassShift
}

// BufferPool recycles byte buffers by size class. Buffers larger than the
// biggest class are plain allocations and are dropped on Release.
type BufferPool struct {
	pools [len(BufferSizeClass)]sync.Pool
}

func NewBufferPool() *BufferPool {
	var bp BufferPool
	for i, sz := range BufferSizeClass {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

// Default is the pool shared by pooled packed arrays.
var Default = NewBufferPool()

// Acquire returns a buffer of n bytes. Its contents are whatever the previous
// owner left behind.
func (bp *BufferPool) Acquire(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

// Release returns the buffer to its pool if its capacity matches a class.
func (bp *BufferPool) Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < BufferSizeClass[0] || c > maxClassSize {
		return // not a valid class
	}
	idx := bits.Len(uint(c)) - 1 - minClassShift
	buf = buf[:c]
	bp.pools[idx].Put(&buf)
}
