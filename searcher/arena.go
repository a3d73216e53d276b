package searcher

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	chunkBits = 12
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
	maxChunks = 1 << 12

	// MaxArenaLimit is the largest number of nodes a single search can allocate.
	MaxArenaLimit = maxChunks * chunkSize
)

// noNode marks a missing parent or an unexplored outcome. The root always
// lives at index 0, so no child can have that index.
const noNode int32 = -1

// arena stores the nodes of one search tree in fixed-size chunks addressed by
// int32 indices. Chunks are allocated lazily and never move, so a node pointer
// stays valid for the whole search while other goroutines keep allocating.
type arena struct {
	chunks [maxChunks]atomic.Pointer[[chunkSize]node]
	next   atomic.Int32
	limit  int32
	grow   sync.Mutex
}

func newArena(limit int) *arena {
	if limit > MaxArenaLimit {
		limit = MaxArenaLimit
	}
	return &arena{limit: int32(limit)}
}

// alloc reserves a zeroed node. ok is false once the limit is reached.
func (a *arena) alloc() (index int32, n *node, ok bool) {
	if a.next.Load() >= a.limit {
		return noNode, nil, false
	}
	index = a.next.Add(1) - 1
	if index >= a.limit {
		return noNode, nil, false
	}

	c := index >> chunkBits
	chunk := a.chunks[c].Load()
	if chunk == nil {
		a.grow.Lock()
		if chunk = a.chunks[c].Load(); chunk == nil {
			chunk = new([chunkSize]node)
			a.chunks[c].Store(chunk)
		}
		a.grow.Unlock()
	}
	return index, &chunk[index&chunkMask], true
}

func (a *arena) at(index int32) *node {
	if index < 0 || index >= a.limit {
		panic(fmt.Sprintf("node index %d out of range", index))
	}
	chunk := a.chunks[index>>chunkBits].Load()
	if chunk == nil {
		panic(fmt.Sprintf("node index %d in an unallocated chunk", index))
	}
	return &chunk[index&chunkMask]
}

// len returns the number of allocated nodes.
func (a *arena) len() int {
	n := a.next.Load()
	if n > a.limit {
		n = a.limit
	}
	return int(n)
}
