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

// Package label provides parsing, normalization and validation of domain
// labels.
//
// A label is the canonical, human-readable name of a status code domain. It
// is a dot-separated hierarchical identifier with 1 to 4 segments, each
// segment starting with a lowercase ASCII letter:
//
//   - "posix.generic"
//   - "posix.errno"
//   - "grpc.status"
//   - "storage.pg.driver"
//
// Labels double as the keys of mapper prefix rules, so a rule written for
// "storage.pg" also covers "storage.pg.driver".
package label

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Label is the canonical, validated name of a domain.
type Label string

// MinLength and MaxLength bound the length of a canonical label.
const (
	MinLength = 3
	MaxLength = 128
)

// labelFmt accepts 1..4 segments of [a-z][a-z0-9_]*, dot-separated.
const labelFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var labelRe = regexp.MustCompile(labelFmt)

var (
	// ErrInvalidFormat is returned when a label does not match labelFmt.
	ErrInvalidFormat = errors.New("label: invalid format")
	// ErrInvalidLength is returned when a label is empty, too short or too long.
	ErrInvalidLength = errors.New("label: invalid length")
)

var (
	_ encoding.TextMarshaler   = (*Label)(nil)
	_ encoding.TextUnmarshaler = (*Label)(nil)
)

// Normalize performs conservative, non-lossy clean-up:
//
//   - trims spaces;
//   - lowercases;
//   - converts "/" to "." (labels are often derived from package paths);
//   - replaces "-" with "_".
//
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. Unlike error reasons, labels are never
// optional: the empty string is rejected.
func Parse(s string) (Label, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Label(s), nil
}

// MustParse is the panic-on-error variant of Parse. Domains call it when
// they are constructed, so a bad label fails at package initialization.
func MustParse(s string) Label {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Validate checks whether l is in canonical form.
func Validate(l Label) error {
	return validate(string(l))
}

// String returns the label text.
func (l Label) String() string { return string(l) }

// Segments splits l into its dot-separated segments.
func (l Label) Segments() []string {
	if l == "" {
		return nil
	}
	return strings.Split(string(l), ".")
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !labelRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
