package page

import "sync"

// MemoryFreeList is a FreeList that keeps supervisor and user pages in separate
// LIFO pools. Safe for concurrent use.
type MemoryFreeList struct {
	mu         sync.Mutex
	supervisor []Address
	user       []Address
}

// NewMemoryFreeList creates an empty free list.
func NewMemoryFreeList() *MemoryFreeList {
	return &MemoryFreeList{}
}

// Return implements FreeList.
func (f *MemoryFreeList) Return(addr Address, supervisor bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if supervisor {
		f.supervisor = append(f.supervisor, addr)
		return
	}
	f.user = append(f.user, addr)
}

// Take pops the most recently returned page of the requested pool and wraps it
// in a fresh returnable handle.
func (f *MemoryFreeList) Take(supervisor bool) (*Handle, bool) {
	f.mu.Lock()
	pool := &f.user
	if supervisor {
		pool = &f.supervisor
	}
	if len(*pool) == 0 {
		f.mu.Unlock()
		return nil, false
	}
	addr := (*pool)[len(*pool)-1]
	*pool = (*pool)[:len(*pool)-1]
	f.mu.Unlock()

	return Create(addr, supervisor, true, f), true
}

// Len returns the number of pages in the requested pool.
func (f *MemoryFreeList) Len(supervisor bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if supervisor {
		return len(f.supervisor)
	}
	return len(f.user)
}
