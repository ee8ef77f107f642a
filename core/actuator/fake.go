package actuator

import (
	"context"
	"sync"
)

// Fake is an in-memory Driver for development machines and tests. It records
// every move so tests can assert on the exact actuation sequence. The recorder
// is safe for concurrent reads while the control loop writes.
type Fake struct {
	mu    sync.Mutex
	moves []int
}

// NewFake creates a Fake driver with no recorded moves.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Move(_ context.Context, angle int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, angle)
	return nil
}

func (f *Fake) Close() error {
	return nil
}

// Moves returns a copy of every angle written so far, in order.
func (f *Fake) Moves() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.moves))
	copy(out, f.moves)
	return out
}

// Position returns the last angle written, or -1 if nothing has moved yet.
func (f *Fake) Position() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.moves) == 0 {
		return -1
	}
	return f.moves[len(f.moves)-1]
}
