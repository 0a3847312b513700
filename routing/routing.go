// Package routing implements a prefix trie keyed by path segments.
//
// Every node carries a value. Registering a route creates implicit
// intermediate nodes that inherit their parent's value, so a lookup that
// runs out of matching segments falls back to the value of the deepest node
// it reached: the longest registered prefix wins, and the root's fallback
// value answers anything else.
package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRoute is returned when a registration names no segments.
	ErrEmptyRoute = errors.New("routing: empty route")
	// ErrDuplicateRoute is returned when a route's terminal node already
	// exists, whether it was registered explicitly or created as an
	// intermediate node of a longer route.
	ErrDuplicateRoute = errors.New("routing: duplicate route")
)

// Table is one node of the trie. The zero value is not usable; start from
// New.
type Table[T any] struct {
	children map[string]*Table[T]
	value    T
	depth    int
}

// New returns a root node holding the fallback value for lookups that match
// nothing at all.
func New[T any](fallback T) *Table[T] {
	return newNode(fallback, 0)
}

func newNode[T any](value T, depth int) *Table[T] {
	return &Table[T]{
		children: make(map[string]*Table[T]),
		value:    value,
		depth:    depth,
	}
}

// Value returns the value stored at this node.
func (t *Table[T]) Value() T { return t.value }

// Depth returns the node's distance from the root.
func (t *Table[T]) Depth() int { return t.depth }

// Step is one segment position of a route, holding one or more
// alternative segments that all lead to the same child.
type Step struct {
	alts []string
}

// One returns a Step matching a single segment.
func One(seg string) Step { return Step{alts: []string{seg}} }

// Any returns a Step matching any of the given segments.
func Any(segs ...string) Step { return Step{alts: segs} }

// Group is a run of route segments used by RegisterGroups: either a serial
// run (one Step per segment) or a parallel set (one Step with
// alternatives).
type Group struct {
	segs     []string
	parallel bool
}

// Ser returns a Group whose segments follow each other in sequence.
func Ser(segs ...string) Group { return Group{segs: segs} }

// Par returns a Group whose segments are alternatives at one position.
func Par(segs ...string) Group { return Group{segs: segs, parallel: true} }

// Register binds value to the exact segment sequence route.
func (t *Table[T]) Register(value T, route ...string) error {
	steps := make([]Step, len(route))
	for i, seg := range route {
		steps[i] = One(seg)
	}
	return t.RegisterSteps(value, steps...)
}

// RegisterSteps binds value to every segment sequence produced by taking
// one alternative from each Step in order.
func (t *Table[T]) RegisterSteps(value T, steps ...Step) error {
	if len(steps) == 0 {
		return ErrEmptyRoute
	}
	return t.register(value, steps[0], steps[1:])
}

// RegisterGroups binds value to every sequence produced by expanding the
// groups: Ser contributes its segments one after another, Par contributes
// one position with alternatives.
func (t *Table[T]) RegisterGroups(value T, groups ...Group) error {
	var steps []Step
	for _, g := range groups {
		if g.parallel {
			steps = append(steps, Any(g.segs...))
			continue
		}
		for _, seg := range g.segs {
			steps = append(steps, One(seg))
		}
	}
	return t.RegisterSteps(value, steps...)
}

func (t *Table[T]) register(value T, head Step, rest []Step) error {
	for _, seg := range head.alts {
		if err := t.registerOne(value, seg, rest); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table[T]) registerOne(value T, seg string, rest []Step) error {
	if len(rest) == 0 {
		if _, ok := t.children[seg]; ok {
			return fmt.Errorf("%w: %q at depth %d", ErrDuplicateRoute, seg, t.depth+1)
		}
		t.children[seg] = newNode(value, t.depth+1)
		return nil
	}
	child, ok := t.children[seg]
	if !ok {
		// Implicit layer: inherits this node's value so partial matches
		// fall back to it.
		child = newNode(t.value, t.depth+1)
		t.children[seg] = child
	}
	return child.register(value, rest[0], rest[1:])
}

// Match is the result of a lookup.
type Match[T any] struct {
	// Value is the value of the deepest node the keys reached.
	Value T
	// Depth is that node's distance from the root.
	Depth int
	// KeysUsed is how many leading keys matched registered segments.
	KeysUsed int
	// Next is the node itself, usable to resume the lookup with further
	// keys.
	Next *Table[T]
}

// Lookup walks the trie as far as the keys match and returns the deepest
// node reached. Keys beyond the last match are ignored, which is what makes
// a registered prefix answer for everything beneath it.
func (t *Table[T]) Lookup(keys ...string) Match[T] {
	return t.lookup(keys, 0)
}

func (t *Table[T]) lookup(keys []string, used int) Match[T] {
	if used < len(keys) {
		if child, ok := t.children[keys[used]]; ok {
			return child.lookup(keys, used+1)
		}
	}
	return Match[T]{Value: t.value, Depth: t.depth, KeysUsed: used, Next: t}
}
