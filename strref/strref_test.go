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
	"sync"
	"testing"
)

var sink Ref

func TestLiteral_NoOwnership(t *testing.T) {
	r := Literal("no buffer space")
	if r.Owned() {
		t.Fatal("literal must not own a buffer")
	}
	if r.Refs() != 0 {
		t.Fatalf("Refs() = %d, want 0", r.Refs())
	}
	c := r.Copy()
	if c.String() != "no buffer space" || c.Owned() {
		t.Fatalf("Copy() = %q owned=%v", c.String(), c.Owned())
	}
	c.Release()
	if !c.Empty() {
		t.Fatal("released ref must be empty")
	}
	if r.String() != "no buffer space" {
		t.Fatal("releasing a copy must not affect the literal")
	}
}

func TestZeroRef_IsEmpty(t *testing.T) {
	var r Ref
	if !r.Empty() || r.Len() != 0 || r.Owned() {
		t.Fatalf("zero Ref: empty=%v len=%d owned=%v", r.Empty(), r.Len(), r.Owned())
	}
	r.Release() // no-op
}

func TestNew_CopyMoveRelease(t *testing.T) {
	r := New("nospace")
	if !r.Owned() || r.Refs() != 1 {
		t.Fatalf("New: owned=%v refs=%d, want true/1", r.Owned(), r.Refs())
	}

	c := r.Copy()
	if r.Refs() != 2 || c.Refs() != 2 {
		t.Fatalf("after Copy refs=%d/%d, want 2/2", r.Refs(), c.Refs())
	}

	m := c.Move()
	if !c.Empty() {
		t.Fatal("moved-from ref must be empty")
	}
	if m.Refs() != 2 {
		t.Fatalf("Move must not touch the count, got %d", m.Refs())
	}
	if m.String() != "nospace" || !m.Equal(r) {
		t.Fatalf("moved text = %q", m.String())
	}

	m.Release()
	if r.Refs() != 1 {
		t.Fatalf("after Release refs=%d, want 1", r.Refs())
	}
	st := r.State()
	r.Release()
	if st.buf.refs.Load() != 0 {
		t.Fatalf("final Release must reach zero, got %d", st.buf.refs.Load())
	}
	if st.buf.text != "" {
		t.Fatal("buffer text must be dropped at zero")
	}
}

func TestFromState_IncrementsCount(t *testing.T) {
	cached := New("error2")
	r := FromState(cached.String(), cached.State())
	if cached.Refs() != 2 {
		t.Fatalf("FromState must add a share, refs=%d", cached.Refs())
	}
	r.Release()
	if cached.Refs() != 1 {
		t.Fatalf("refs after release = %d, want 1", cached.Refs())
	}

	lit := FromState("success", State{})
	if lit.Owned() || lit.String() != "success" {
		t.Fatal("FromState with empty state must yield a literal")
	}
}

func TestRelease_Underflow_Panics(t *testing.T) {
	r := New("x")
	dup := r // ownership duplicated without Copy
	r.Release()

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrReleased) {
			t.Fatalf("recover() = %v, want ErrReleased", rec)
		}
	}()
	dup.Release()
}

func TestAllocations(t *testing.T) {
	if n := testing.AllocsPerRun(100, func() { sink = Literal("static text") }); n != 0 {
		t.Fatalf("Literal allocs = %v, want 0", n)
	}
	text := "dynamic text"
	if n := testing.AllocsPerRun(100, func() { sink = New(text) }); n != 1 {
		t.Fatalf("New allocs = %v, want 1", n)
	}
	base := New(text)
	if n := testing.AllocsPerRun(100, func() {
		c := base.Copy()
		c.Release()
	}); n != 0 {
		t.Fatalf("Copy+Release allocs = %v, want 0", n)
	}
}

func TestConcurrentCopies(t *testing.T) {
	r := New("shared")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c := r.Copy()
				c.Release()
			}
		}()
	}
	wg.Wait()
	if r.Refs() != 1 {
		t.Fatalf("refs after concurrent copies = %d, want 1", r.Refs())
	}
}
