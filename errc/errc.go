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

package errc

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Errc is a generic, errno-style classification.
//
// It is a named integer (not a plain int) so that APIs can say explicitly
// that they expect a generic classification rather than some domain's raw
// value.
type Errc int

// Class groups generic classifications that transports usually treat alike.
type Class uint8

// Classes. ClassNone is reserved for Success.
const (
	ClassNone Class = iota
	ClassInvalid
	ClassRange
	ClassNotFound
	ClassExists
	ClassPermission
	ClassResource
	ClassBusy
	ClassTimeout
	ClassCanceled
	ClassUnsupported
	ClassNetwork
	ClassState
	ClassIO
)

var classNames = [...]string{
	ClassNone:        "none",
	ClassInvalid:     "invalid",
	ClassRange:       "range",
	ClassNotFound:    "not_found",
	ClassExists:      "exists",
	ClassPermission:  "permission",
	ClassResource:    "resource",
	ClassBusy:        "busy",
	ClassTimeout:     "timeout",
	ClassCanceled:    "canceled",
	ClassUnsupported: "unsupported",
	ClassNetwork:     "network",
	ClassState:       "state",
	ClassIO:          "io",
}

// String returns the lowercase name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

var (
	// ErrInvalid is returned when a string does not name a known generic
	// classification.
	ErrInvalid = errors.New("errc: unknown generic code")
)

var (
	_ encoding.TextMarshaler   = (*Errc)(nil)
	_ encoding.TextUnmarshaler = (*Errc)(nil)
)

// Known reports whether e is an entry of the generic table.
func (e Errc) Known() bool {
	_, ok := byCode[e]
	return ok
}

// String returns the canonical name of e, e.g. "no_buffer_space".
// Unknown values render as "errc(N)".
func (e Errc) String() string {
	if ent, ok := byCode[e]; ok {
		return ent.name
	}
	return "errc(" + strconv.Itoa(int(e)) + ")"
}

// Message returns the human-readable text of e. The text is static for
// known values.
func (e Errc) Message() string {
	if ent, ok := byCode[e]; ok {
		return ent.msg
	}
	return "Unknown error " + strconv.Itoa(int(e))
}

// Class returns the equivalence class of e. Unknown values belong to ClassIO,
// the most conservative choice for transports.
func (e Errc) Class() Class {
	if ent, ok := byCode[e]; ok {
		return ent.class
	}
	return ClassIO
}

// Normalize brings s closer to the canonical name form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does not check that the result names a known value.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Parse normalizes s and looks it up in the generic table.
func Parse(s string) (Errc, error) {
	if e, ok := byName[Normalize(s)]; ok {
		return e, nil
	}
	return Success, ErrInvalid
}

// MustParse is the panic-on-error variant of Parse, for package-level vars.
func MustParse(s string) Errc {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// MarshalText implements encoding.TextMarshaler. Unknown values fail.
func (e Errc) MarshalText() ([]byte, error) {
	ent, ok := byCode[e]
	if !ok {
		return nil, ErrInvalid
	}
	return []byte(ent.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Errc) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
