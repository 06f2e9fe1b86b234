// Package repository provides the in-memory implementations of the domain
// repositories. Each store guards its map with a RWMutex and issues ids from
// its own strictly-increasing sequence; ids are never reused within the
// process lifetime.
package repository

import "sync/atomic"

type sequence struct {
	last atomic.Int64
}

// Next returns the next identifier, starting at 1.
func (s *sequence) Next() int64 {
	return s.last.Add(1)
}
