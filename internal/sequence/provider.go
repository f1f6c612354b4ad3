// Package sequence issues monotonically increasing ticket numbers for
// the local reservation store.  The number is a fallback numbering aid
// only; a remote reservation's ticket identifier is always
// authoritative when present.
package sequence

import (
	"context"
	"sync/atomic"
)

// Provider hands out the next ticket sequence number.  Implementations
// must be safe for concurrent use.
type Provider interface {
	Next(ctx context.Context) (uint64, error)
}

// Memory is an in-process counter.  It is the degraded-mode fallback
// when Redis is unavailable and the implementation used in tests.
// Numbers restart from Start on process restart.
type Memory struct {
	n uint64
}

// NewMemory returns a Memory counter that will issue start+1 first.
func NewMemory(start uint64) *Memory {
	return &Memory{n: start}
}

// Next returns the next number.  Never fails.
func (m *Memory) Next(context.Context) (uint64, error) {
	return atomic.AddUint64(&m.n, 1), nil
}
