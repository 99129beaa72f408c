package typeguess

import "sync"

// GuesserPool recycles Guesser instances for allocation-sensitive loaders
// that guess thousands of columns. Reset is performed on return, not on
// checkout: a Guesser obtained from Get carries no residual state, and a
// misused instance fails with the same mixed-typing errors as a fresh one.
//
// Checkout and return are the only synchronization points; a checked-out
// Guesser is exclusively owned by the caller until Put.
type GuesserPool struct {
	settings Settings
	pool     sync.Pool
}

// NewGuesserPool returns a pool whose Guessers carry st.
func NewGuesserPool(st Settings) *GuesserPool {
	p := &GuesserPool{settings: st}
	p.pool.New = func() any {
		return NewGuesserWithSettings(p.settings)
	}
	return p
}

// Get checks out a Guesser in the Empty state.
func (p *GuesserPool) Get() *Guesser {
	return p.pool.Get().(*Guesser)
}

// Put resets g and returns it to the pool. g must not be used afterwards.
func (p *GuesserPool) Put(g *Guesser) {
	if g == nil {
		return
	}
	g.Reset()
	g.Settings = p.settings
	p.pool.Put(g)
}
