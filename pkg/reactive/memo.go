package reactive

import "sync"

// Memo caches compute(source) and recomputes only after the source has been
// written to.
type Memo[S, V any] struct {
	source  *Signal[S]
	compute func(S) V

	mu      sync.Mutex
	value   V
	version uint64
	valid   bool
}

func NewMemo[S, V any](source *Signal[S], compute func(S) V) *Memo[S, V] {
	return &Memo[S, V]{
		source:  source,
		compute: compute,
	}
}

func (m *Memo[S, V]) Get() V {
	src, version := m.source.Snapshot()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.version == version {
		return m.value
	}
	m.value = m.compute(src)
	m.version = version
	m.valid = true
	return m.value
}

func (m *Memo[S, V]) Invalidate() {
	m.mu.Lock()
	m.valid = false
	m.mu.Unlock()
}
