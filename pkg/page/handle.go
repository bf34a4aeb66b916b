package page

import (
	"fmt"
	"sync/atomic"

	"github.com/aretw0/arbor/pkg/domain"
)

// Address is the physical address of a page.
type Address uintptr

// FreeList receives pages whose last reference was released.
type FreeList interface {
	Return(addr Address, supervisor bool)
}

// Handle tracks the references to one physical page.
type Handle struct {
	addr       Address
	supervisor bool
	returnable bool
	freelist   FreeList
	count      atomic.Int32
}

// Create returns a handle with a count of one. freelist may be nil when
// returnable is false.
func Create(addr Address, supervisor, returnable bool, freelist FreeList) *Handle {
	if returnable && freelist == nil {
		panic(fmt.Errorf("page %#x: returnable page without free list: %w", addr, domain.ErrInvariantViolation))
	}
	h := &Handle{
		addr:       addr,
		supervisor: supervisor,
		returnable: returnable,
		freelist:   freelist,
	}
	h.count.Store(1)
	return h
}

func (h *Handle) Address() Address { return h.addr }
func (h *Handle) Supervisor() bool { return h.supervisor }
func (h *Handle) Returnable() bool { return h.returnable }

// Count returns the current number of references.
func (h *Handle) Count() int { return int(h.count.Load()) }

// Destroyed reports whether the last reference has been released.
func (h *Handle) Destroyed() bool { return h.count.Load() == 0 }

// Retain adds a reference.
func (h *Handle) Retain() {
	for {
		n := h.count.Load()
		if n == 0 {
			panic(fmt.Errorf("page %#x: retain after destroy: %w", h.addr, domain.ErrInvariantViolation))
		}
		if h.count.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release drops a reference. The release that brings the count to zero returns
// the page to its free list (if returnable) exactly once.
func (h *Handle) Release() {
	for {
		n := h.count.Load()
		if n == 0 {
			panic(fmt.Errorf("page %#x: release after destroy: %w", h.addr, domain.ErrInvariantViolation))
		}
		if !h.count.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 && h.returnable {
			h.freelist.Return(h.addr, h.supervisor)
		}
		return
	}
}
