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

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/apis"
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/label"
	"dirpx.dev/statuscode/mapper/internal/segmenttrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the per-Errc library defaults.
//  2. Apply user-provided options.
//  3. Normalize and validate label prefixes and build one segment trie per
//     transport.
//  4. Freeze all maps into fresh copies.
//
// Errors indicate invalid prefixes or overrides for empty codes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	seedDefaults(b)
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	httpTrie, err := buildTrie(b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := buildTrie(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		http: table[int]{
			defaults: freeze(b.httpDefaults),
			override: freeze(b.httpOverride),
			trie:     httpTrie,
			native:   httpFromGRPC,
			success:  200,
			fallback: b.fallbackHTTP,
		},
		grpc: table[codes.Code]{
			defaults: freeze(b.grpcDefaults),
			override: freeze(b.grpcOverride),
			trie:     grpcTrie,
			native:   grpcFromGRPC,
			success:  codes.OK,
			fallback: b.fallbackGRPC,
		},
	}, nil
}

func buildTrie[T any](rules []prefixRule, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p := label.Normalize(r.prefix)
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("label prefix %q: %w", r.prefix, err)
		}
	}
	return t, nil
}

// source names the tier that produced a status.
type source uint8

const (
	srcEmpty source = iota
	srcSuccess
	srcOverride
	srcNative
	srcPrefix
	srcDefault
	srcFallback
)

var sourceNames = [...]string{"empty", "success", "override", "native", "prefix", "default", "fallback"}

func (s source) String() string { return sourceNames[s] }

// table holds the frozen rules of one transport.
type table[T any] struct {
	defaults map[errc.Errc]T
	override map[key]T
	trie     *segmenttrie.Trie[T]
	native   func(codes.Code) (T, bool)
	success  T
	fallback T
}

// resolve walks the tiers for e in the order documented on the package.
// pattern is set only for prefix hits.
func (t *table[T]) resolve(e statuscode.Erased) (val T, src source, pattern string) {
	if e.Empty() {
		return t.fallback, srcEmpty, ""
	}
	if e.Success() {
		return t.success, srcSuccess, ""
	}
	if v, ok := t.override[key{id: e.Domain().ID(), value: e.Value()}]; ok {
		return v, srcOverride, ""
	}
	if n, ok := e.Domain().(apis.GRPCNative); ok {
		if gc, ok := n.GRPCCode(e); ok {
			if v, ok := t.native(gc); ok {
				return v, srcNative, ""
			}
		}
	}
	if t.trie != nil {
		if v, p, ok := t.trie.Lookup(labelOf(e.Domain())); ok {
			return v, srcPrefix, p
		}
	}
	if g := e.GenericCode(); !g.Empty() {
		if v, ok := t.defaults[g.Value()]; ok {
			return v, srcDefault, ""
		}
	}
	return t.fallback, srcFallback, ""
}

// mapper is the immutable apis.Mapper implementation. Lookups never lock.
type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// HTTPStatus resolves an HTTP status for c. It is never zero.
func (m *mapper) HTTPStatus(c statuscode.Code) int {
	v, _, _ := m.http.resolve(erase(c))
	return v
}

// GRPCStatus resolves a gRPC status for c.
func (m *mapper) GRPCStatus(c statuscode.Code) codes.Code {
	v, _, _ := m.grpc.resolve(erase(c))
	return v
}

// Status resolves both transports for c with the same tiers.
func (m *mapper) Status(c statuscode.Code) apis.Status {
	e := erase(c)
	h, _, _ := m.http.resolve(e)
	g, _, _ := m.grpc.resolve(e)
	return apis.Status{HTTP: h, GRPC: g}
}

// Explain produces a textual trace of how the mapper resolved c.
//
// Example output:
//
//	code=posix.errno:28 generic="no_space_on_device"
//	http: source=prefix pattern="posix.*" -> 503
//	grpc: source=default -> RESOURCE_EXHAUSTED(8)
func (m *mapper) Explain(c statuscode.Code) string {
	e := erase(c)
	var b strings.Builder

	if e.Empty() {
		b.WriteString("code=<empty>\n")
	} else {
		generic := ""
		if g := e.GenericCode(); !g.Empty() {
			generic = g.Value().String()
		}
		_, _ = fmt.Fprintf(&b, "code=%s:%d generic=%q\n", labelOf(e.Domain()), e.Value(), generic)
	}

	h, src, pat := m.http.resolve(e)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", src, patternSuffix(pat), h)

	g, src, pat := m.grpc.resolve(e)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", src, patternSuffix(pat), grpcName(g), int(g))

	return b.String()
}

var _ apis.Mapper = (*mapper)(nil)
