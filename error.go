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

package statuscode

import (
	"errors"
	"log/slog"
)

// Error is the failure object for status codes.
//
// It is what Err returns and what Raise panics with. It carries:
//   - the erased code, so the domain and raw value can be recovered;
//   - an optional message that replaces the domain's text in Error();
//   - an optional cause for errors.Is / errors.As chains.
//
// The WithX helpers return a shallow copy; an Error is never mutated after
// construction.
type Error struct {
	code    Erased
	message string
	cause   error
}

// NewError wraps c in an Error and applies opts in order. A nil c yields an
// Error around the empty code.
func NewError(c Code, opts ...Option) *Error {
	e := &Error{code: erase(c)}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface:
//
//	<domain>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.code.domain == nil {
		return "statuscode: empty code"
	}
	msg := e.message
	if msg == "" {
		msg = e.code.Message()
	}
	return nameOf(e.code.domain) + ": " + msg
}

// Code returns the erased status code carried by e.
func (e *Error) Code() Erased { return e.code }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error whose code is equivalent to e's.
// This lets callers test across domains:
//
//	errors.Is(err, statuscode.Generic(errc.NoBufferSpace).Err())
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return Equal(e.code, t.code)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil || e.code.domain == nil {
		return slog.StringValue("<empty>")
	}
	generic := "none"
	if g := e.code.GenericCode(); !g.Empty() {
		generic = g.value.String()
	}
	attrs := []slog.Attr{
		slog.String("domain", nameOf(e.code.domain)),
		slog.String("domain_id", e.code.domain.ID().String()),
		slog.Uint64("value", e.code.value),
		slog.String("message", e.code.Message()),
		slog.String("generic", generic),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// WithMessage returns a copy of e whose Error() uses msg instead of the
// domain's text. The code itself is unchanged.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.message = msg
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	return &cp
}

// FromError extracts the status code of the first *Error in err's chain.
func FromError(err error) (Erased, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.code, true
	}
	return Erased{}, false
}

// Recover converts a panic raised by Raise into an error stored in *errp.
// Any other panic is re-raised. Use it directly with defer:
//
//	func load() (err error) {
//	    defer statuscode.Recover(&err)
//	    ...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = e
	}
}

// Catch runs fn and returns the *Error it raised, or nil. Panics that did not
// come from Raise propagate.
func Catch(fn func()) (raised *Error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			raised = e
		}
	}()
	fn()
	return nil
}
