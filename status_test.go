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

package statuscode_test

import (
	"errors"
	"testing"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
)

func TestEmptyCodesAreEqual(t *testing.T) {
	empties := []statuscode.Code{
		nil,
		statuscode.GenericCode{},
		statuscode.StatusCode[fileCode]{},
		statuscode.StatusCode[int64]{},
		statuscode.Erased{},
	}
	for i, a := range empties {
		for j, b := range empties {
			if !statuscode.Equal(a, b) {
				t.Fatalf("empty[%d] != empty[%d]", i, j)
			}
		}
		if statuscode.Equal(a, statuscode.Of(success1)) || statuscode.Equal(statuscode.Of(success1), a) {
			t.Fatalf("empty[%d] equal to a non-empty code", i)
		}
	}
}

func TestEmptyIsNeitherSuccessNorFailure(t *testing.T) {
	var c statuscode.StatusCode[fileCode]
	if c.Success() || c.Failure() {
		t.Fatalf("empty code: success=%v failure=%v", c.Success(), c.Failure())
	}
	if c.Message() != "" {
		t.Fatalf("empty message = %q", c.Message())
	}
	if c.Value() != 0 {
		t.Fatalf("empty value = %d", c.Value())
	}
	if c.Err() != nil {
		t.Fatalf("empty Err() = %v", c.Err())
	}
	if !c.GenericCode().Empty() {
		t.Fatal("empty code has a generic mapping")
	}
}

func TestSameDomainComparesRawValues(t *testing.T) {
	all := []fileCode{success1, nospace, success2, error2}
	for _, a := range all {
		for _, b := range all {
			got := statuscode.Of(a).Equal(statuscode.Of(b))
			if got != (a == b) {
				t.Fatalf("%d == %d: got %v", a, b, got)
			}
		}
	}
	g1 := statuscode.Generic(errc.NoBufferSpace)
	g2 := statuscode.Generic(errc.NoSpaceOnDevice)
	if g1.Equal(g2) || !g1.Equal(statuscode.Generic(errc.NoBufferSpace)) {
		t.Fatal("generic codes must compare by value")
	}
}

func TestSuccessMapsOntoGenericSuccess(t *testing.T) {
	gs := statuscode.Generic(errc.Success)
	for _, v := range []fileCode{success1, success2} {
		c := statuscode.Of(v)
		if !c.Success() {
			t.Fatalf("%d should be success", v)
		}
		if !statuscode.Equal(c, gs) || !statuscode.Equal(gs, c) {
			t.Fatalf("%d should equal generic success", v)
		}
	}
}

func TestResourceExhaustionEquivalence(t *testing.T) {
	c := statuscode.Of(nospace)
	in := map[errc.Errc]bool{}
	for _, e := range nospaceGeneric {
		in[e] = true
	}
	for _, e := range errc.All() {
		g := statuscode.Generic(e)
		want := in[e]
		if got := statuscode.Equal(c, g); got != want {
			t.Fatalf("nospace == %s: got %v want %v", e, got, want)
		}
		if got := statuscode.Equal(g, c); got != want {
			t.Fatalf("%s == nospace: got %v want %v", e, got, want)
		}
	}
}

func TestEqualityIsSymmetric(t *testing.T) {
	codes := []statuscode.Code{
		statuscode.Of(success1),
		statuscode.Of(nospace),
		statuscode.Of(success2),
		statuscode.Of(error2),
		statuscode.Generic(errc.Success),
		statuscode.Generic(errc.FilenameTooLong),
		statuscode.Generic(errc.PermissionDenied),
		statuscode.Generic(errc.NoBufferSpace).Erase(),
		statuscode.Erased{},
	}
	for _, a := range codes {
		for _, b := range codes {
			if statuscode.Equal(a, b) != statuscode.Equal(b, a) {
				t.Fatalf("asymmetric: %v vs %v", a, b)
			}
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	if !statuscode.Of(nospace).Equal(statuscode.Generic(errc.FilenameTooLong)) {
		t.Fatal("nospace == filename_too_long should hold")
	}
	if !statuscode.Of(success1).Equal(statuscode.Generic(errc.Success)) {
		t.Fatal("success1 == success should hold")
	}
	if statuscode.Of(error2).Equal(statuscode.Generic(errc.Success)) {
		t.Fatal("error2 == success should not hold")
	}
	if statuscode.Generic(errc.Success).Equal(statuscode.Of(nospace)) {
		t.Fatal("success == nospace should not hold")
	}
	if statuscode.Generic(errc.FilenameTooLong).Equal(statuscode.Of(success1)) {
		t.Fatal("filename_too_long == success1 should not hold")
	}
}

func TestErasedRoundTrip(t *testing.T) {
	for _, v := range []fileCode{success1, nospace, success2, error2} {
		c := statuscode.Of(v)
		e := c.Erase()
		if e.Value() != uint64(c.Value()) {
			t.Fatalf("value: %d vs %d", e.Value(), c.Value())
		}
		if e.Message() != c.Message() {
			t.Fatalf("message: %q vs %q", e.Message(), c.Message())
		}
		if e.Success() != c.Success() || e.Failure() != c.Failure() {
			t.Fatalf("%d: classification changed after erasure", v)
		}
		if !statuscode.SameDomain(e.Domain(), c.Domain()) {
			t.Fatal("erasure lost the domain")
		}
		back, ok := statuscode.Typed[fileCode](e)
		if !ok || back != c {
			t.Fatalf("Typed(%v) = %v, %v", e, back, ok)
		}
	}
}

func TestErasedWidensSignedValues(t *testing.T) {
	c := statuscode.New[int8](statuscode.GenericDomain, -1)
	back, ok := statuscode.TypedIn[int8](c.Erase(), statuscode.GenericDomain)
	if !ok || back.Value() != -1 {
		t.Fatalf("TypedIn = %d, %v", back.Value(), ok)
	}
}

func TestTypedRejectsTruncatingValues(t *testing.T) {
	e := statuscode.NewErased(fileDomain, 1<<8+uint64(nospace))
	if back, ok := statuscode.Typed[fileCode](e); ok {
		t.Fatalf("Typed narrowed %d to %d", e.Value(), back.Value())
	}
	if _, ok := statuscode.TypedIn[uint32](statuscode.NewErased(statuscode.GenericDomain, 1<<32+16), statuscode.GenericDomain); ok {
		t.Fatal("TypedIn[uint32] accepted a 33-bit value")
	}
	if !statuscode.Fits[int8](statuscode.New[int8](statuscode.GenericDomain, -5).Erase().Value()) {
		t.Fatal("erased negative int8 must fit int8")
	}
	if statuscode.Fits[uint16](1 << 16) {
		t.Fatal("1<<16 must not fit uint16")
	}
}

func TestTypedRejectsForeignDomain(t *testing.T) {
	if _, ok := statuscode.Typed[fileCode](statuscode.Generic(errc.Success).Erase()); ok {
		t.Fatal("generic code recovered as fileCode")
	}
	if _, ok := statuscode.Typed[fileCode](statuscode.Erased{}); ok {
		t.Fatal("empty code recovered as fileCode")
	}
}

func TestMessageStability(t *testing.T) {
	cached := fileDomain.messages[nospace]
	before := cached.Refs()

	c := statuscode.Of(nospace)
	r1 := c.MessageRef()
	r2 := c.MessageRef()
	if r1.String() != "nospace" || !r1.Equal(r2) {
		t.Fatalf("messages differ: %q %q", r1.String(), r2.String())
	}
	if got := cached.Refs(); got != before+2 {
		t.Fatalf("refs while held = %d, want %d", got, before+2)
	}
	r1.Release()
	r2.Release()
	if got := cached.Refs(); got != before {
		t.Fatalf("refs after release = %d, want %d", got, before)
	}

	if c.Message() != c.Message() {
		t.Fatal("Message() not stable")
	}
	if got := cached.Refs(); got != before {
		t.Fatalf("Message() leaked a share: %d, want %d", got, before)
	}
}

func TestGenericDomain(t *testing.T) {
	g := statuscode.Generic(errc.NoSpaceOnDevice)
	if !g.Failure() || g.Message() != "No space left on device" {
		t.Fatalf("generic: failure=%v message=%q", g.Failure(), g.Message())
	}
	if !statuscode.Generic(errc.Success).Success() {
		t.Fatal("generic success is not success")
	}
	if got := g.GenericCode(); got != g {
		t.Fatalf("generic mapping of a generic code = %v", got)
	}
	if got := statuscode.Generic(errc.Errc(9999)).Message(); got != "Unknown error 9999" {
		t.Fatalf("unknown message = %q", got)
	}
	if got := g.String(); got != "posix.generic: No space left on device" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCheckOwnerPanicsOnForeignCode(t *testing.T) {
	tests := []struct {
		name string
		code statuscode.Erased
	}{
		{"foreign", statuscode.Generic(errc.Success).Erase()},
		{"empty", statuscode.Erased{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, statuscode.ErrForeignCode) {
					t.Fatalf("recovered %v, want ErrForeignCode", r)
				}
			}()
			fileDomain.Failure(tt.code)
		})
	}
}

func TestRaiseOfEmptyCodePanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, statuscode.ErrForeignCode) {
			t.Fatalf("recovered %v", err)
		}
	}()
	statuscode.Erased{}.Raise()
}

func TestIDString(t *testing.T) {
	if got := fileID.String(); got != "0x430f120194fc06c7" {
		t.Fatalf("String() = %q", got)
	}
	id, err := statuscode.ParseID("0x430F120194FC06C7")
	if err != nil || id != fileID {
		t.Fatalf("ParseID = %v, %v", id, err)
	}
	if _, err := statuscode.ParseID("nope"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSameDomain(t *testing.T) {
	if !statuscode.SameDomain(nil, nil) {
		t.Fatal("nil domains should be the same")
	}
	if statuscode.SameDomain(nil, fileDomain) || statuscode.SameDomain(fileDomain, statuscode.GenericDomain) {
		t.Fatal("distinct domains reported the same")
	}
	if !statuscode.SameDomain(fileDomain, newFileDomain()) {
		t.Fatal("two instances with one ID should be the same domain")
	}
}

func TestNewBasePanicsOnBadLabel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	statuscode.NewBase(1, "Bad Label!")
}
