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

package strref

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// ErrReleased is the panic value (wrapped) raised when a handle tries to
// release a buffer whose counter is already at zero. That can only happen
// when ownership was duplicated without Copy, which is a programming error.
var ErrReleased = errors.New("strref: release of an unowned buffer")

// buffer is the shared, reference-counted storage behind dynamic refs.
type buffer struct {
	refs atomic.Int64
	text string
}

// State is the opaque ownership slot of a Ref.
//
// For literals it is the zero value. For dynamic refs it holds the single
// counted handle to the shared buffer. It is exported only so that a domain
// can rebuild a handle from raw parts with FromState.
type State struct {
	buf *buffer
}

// State must never grow beyond one reference-counted handle.
var _ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(State{})]struct{}

// Ref references human-readable message text.
//
// The zero Ref is empty: no text and no ownership.
//
// A dynamic Ref owns one share of its buffer. Duplicate it with Copy, never
// by assignment: two assigned copies hold a single share between them and
// releasing both panics with ErrReleased. Hand a Ref over with Move.
type Ref struct {
	view  string
	state State
}

// Literal returns a non-owning ref to s. It never allocates; s is expected to
// be static text (a constant or a package-level table entry).
func Literal(s string) Ref {
	return Ref{view: s}
}

// New wraps dynamically produced text in a freshly allocated counted buffer.
// The returned ref holds the only share (count = 1).
func New(s string) Ref {
	b := &buffer{text: s}
	b.refs.Store(1)
	return Ref{view: s, state: State{buf: b}}
}

// FromState builds a ref from another ref's raw view and state. Any counted
// buffer found in st gains one more share, owned by the returned ref.
func FromState(view string, st State) Ref {
	if st.buf != nil {
		st.buf.refs.Add(1)
	}
	return Ref{view: view, state: st}
}

// State returns the raw ownership slot of r, for use with FromState.
func (r Ref) State() State { return r.state }

// Copy returns a new handle to the same text. Dynamic refs gain one share.
func (r Ref) Copy() Ref {
	return FromState(r.view, r.state)
}

// Move transfers r's text and ownership to the returned ref and leaves r
// empty. The shared counter is untouched.
func (r *Ref) Move() Ref {
	out := *r
	*r = Ref{}
	return out
}

// Release gives up r's share and empties r. When the last share goes away
// the buffer drops its text. Releasing an empty or literal ref is a no-op.
func (r *Ref) Release() {
	b := r.state.buf
	*r = Ref{}
	if b == nil {
		return
	}
	switch n := b.refs.Add(-1); {
	case n == 0:
		b.text = ""
	case n < 0:
		panic(fmt.Errorf("%w (count %d)", ErrReleased, n))
	}
}

// String returns the referenced text.
func (r Ref) String() string { return r.view }

// Len returns the length of the referenced text in bytes.
func (r Ref) Len() int { return len(r.view) }

// Empty reports whether r references no text.
func (r Ref) Empty() bool { return r.view == "" && r.state.buf == nil }

// Owned reports whether r holds a share of a counted buffer.
func (r Ref) Owned() bool { return r.state.buf != nil }

// Refs returns the current share count of r's buffer, or 0 for literals.
func (r Ref) Refs() int64 {
	if r.state.buf == nil {
		return 0
	}
	return r.state.buf.refs.Load()
}

// Equal reports whether r and o reference the same text.
func (r Ref) Equal(o Ref) bool { return r.view == o.view }
