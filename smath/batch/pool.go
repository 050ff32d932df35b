package batch

import "sync"

// Resizable is a Buffer whose length can change in place.
type Resizable interface {
	Buffer
	Resize(n int)
	Zero()
}

// Pool provides sync.Pool-based buffer reuse for loops that need scratch
// buffers of varying length.
type Pool[B Resizable] struct {
	pool sync.Pool
}

// NewPool returns a Pool that creates buffers with newBuf when empty.
func NewPool[B Resizable](newBuf func() B) *Pool[B] {
	return &Pool[B]{
		pool: sync.Pool{
			New: func() any {
				return newBuf()
			},
		},
	}
}

// Get returns a zeroed buffer of length n. Callers must return it via Put
// when done.
func (p *Pool[B]) Get(n int) B {
	b := p.pool.Get().(B)
	b.Resize(n)
	b.Zero()
	return b
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *Pool[B]) Put(b B) {
	p.pool.Put(b)
}
