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
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets the HTTP status used for codes whose generic
// classification is e.
func WithHTTPDefault(e errc.Errc, status int) Option {
	return func(b *builder) { b.httpDefaults[e] = status }
}

// WithGRPCDefault sets the gRPC code used for codes whose generic
// classification is e.
func WithGRPCDefault(e errc.Errc, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[e] = c }
}

// WithHTTPOverride pins the HTTP status of one exact code. Overrides take
// precedence over every other rule. c must not be empty.
func WithHTTPOverride(c statuscode.Code, status int) Option {
	return func(b *builder) {
		k, err := keyOf(c)
		if err != nil {
			b.errs = append(b.errs, err)
			return
		}
		b.httpOverride[k] = status
	}
}

// WithGRPCOverride pins the gRPC code of one exact code. c must not be empty.
func WithGRPCOverride(c statuscode.Code, gc codes.Code) Option {
	return func(b *builder) {
		k, err := keyOf(c)
		if err != nil {
			b.errs = append(b.errs, err)
			return
		}
		b.grpcOverride[k] = gc
	}
}

// WithHTTPPrefix adds an HTTP rule for every domain whose label starts with
// prefix. Use "*" to match a single segment.
func WithHTTPPrefix(prefix string, status int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, status}) }
}

// WithGRPCPrefix adds a gRPC rule for every domain whose label starts with
// prefix.
func WithGRPCPrefix(prefix string, gc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, int(gc)}) }
}

// WithFallback replaces the statuses used when nothing else matches.
func WithFallback(status int, gc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = status
		b.fallbackGRPC = gc
	}
}

func keyOf(c statuscode.Code) (key, error) {
	if c == nil || c.Empty() {
		return key{}, fmt.Errorf("mapper: override for an empty code")
	}
	e := c.Erase()
	return key{id: e.Domain().ID(), value: e.Value()}, nil
}
