package rafters

import "sync"

// memo holds a value computed at most once. It is either uncomputed or
// computed; a computation that fails leaves it uncomputed.
//
// The lock is held while computing, so a computation must not read the
// same memo it is filling.
type memo[T any] struct {
	mu   sync.Mutex
	done bool
	val  T
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.val, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	m.val = v
	m.done = true
	return v, nil
}
