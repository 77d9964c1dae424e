// Package collection holds the session's in-memory goal snapshot.
//
// The collection is a disposable cache of the GoalStore contents: it is only
// ever replaced wholesale after a full refresh, never patched in place, so
// readers can never observe a half-updated list. Each replacement bumps a
// generation counter which callers use to discard stale refresh results.
package collection

import (
	"sync"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// Collection is an ordered goal snapshot with atomic whole-sale replacement.
// Order is the server-returned order; no sorting is applied.
type Collection struct {
	mu         sync.RWMutex
	goals      []goal.Goal
	generation uint64
}

// New returns an empty collection at generation zero.
func New() *Collection {
	return &Collection{}
}

// ReplaceAll swaps the entire snapshot and returns the new generation.
// The input slice is copied; later mutation of it by the caller does not
// leak into the collection.
func (c *Collection) ReplaceAll(goals []goal.Goal) uint64 {
	snapshot := make([]goal.Goal, len(goals))
	copy(snapshot, goals)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.goals = snapshot
	c.generation++
	return c.generation
}

// Snapshot returns a copy of the current goal list in collection order.
func (c *Collection) Snapshot() []goal.Goal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]goal.Goal, len(c.goals))
	copy(out, c.goals)
	return out
}

// Len returns the number of goals in the current snapshot.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.goals)
}

// Generation returns the number of replacements applied so far.
func (c *Collection) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
