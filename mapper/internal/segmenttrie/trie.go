/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie indexes dot-separated label prefixes for
// longest-prefix matching.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Wildcard matches exactly one segment.
const Wildcard = "*"

// Trie maps dotted prefixes such as "posix.errno" or "grpc.*" to values.
//
// Matching is segment-aware: "posix" matches "posix.errno" but not
// "posixish". The deepest matching prefix wins; at equal depth a literal
// segment beats a wildcard. A Trie is not safe for concurrent Insert, but
// any number of goroutines may Match once inserts are done.
type Trie[T any] struct {
	root node[T]
	size int
}

type node[T any] struct {
	next    map[string]*node[T]
	set     bool
	val     T
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Len returns the number of distinct prefixes stored.
func (t *Trie[T]) Len() int { return t.size }

// Insert associates val with prefix, replacing any earlier value for the
// same prefix.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, err := Split(prefix)
	if err != nil {
		return err
	}

	n := &t.root
	for _, s := range segs {
		if n.next == nil {
			n.next = make(map[string]*node[T])
		}
		child := n.next[s]
		if child == nil {
			child = &node[T]{}
			n.next[s] = child
		}
		n = child
	}
	if !n.set {
		t.size++
	}
	n.set = true
	n.val = val
	n.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix of key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, _, ok := t.Lookup(key)
	return v, ok
}

// Lookup is Match that also reports the stored pattern that matched.
func (t *Trie[T]) Lookup(key string) (val T, pattern string, ok bool) {
	if t == nil || key == "" {
		return val, "", false
	}
	best := hit[T]{depth: -1}
	t.root.walk(key, 0, &best)
	if best.n == nil {
		return val, "", false
	}
	return best.n.val, best.n.pattern, true
}

type hit[T any] struct {
	depth int
	n     *node[T]
}

func (n *node[T]) walk(key string, depth int, best *hit[T]) {
	if n.set && depth > best.depth {
		best.depth, best.n = depth, n
	}
	if key == "" || len(n.next) == 0 {
		return
	}
	seg, rest, _ := strings.Cut(key, ".")
	if !validSegment(seg) {
		return
	}
	if c := n.next[seg]; c != nil {
		c.walk(rest, depth+1, best)
	}
	if c := n.next[Wildcard]; c != nil {
		c.walk(rest, depth+1, best)
	}
}

// Split validates prefix and returns its segments. Every segment must be
// [a-z][a-z0-9_]* or the wildcard, and at least one must not be a wildcard.
func Split(prefix string) ([]string, error) {
	if prefix == "" {
		return nil, ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	literal := false
	for _, s := range segs {
		switch {
		case s == Wildcard:
		case validSegment(s):
			literal = true
		default:
			return nil, ErrInvalidPrefix
		}
	}
	if !literal {
		return nil, ErrInvalidPrefix
	}
	return segs, nil
}

func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
