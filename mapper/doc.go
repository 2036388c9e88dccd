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

// Package mapper provides deterministic, immutable mappings from status
// codes of any domain to transport-level statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves a code in the following order:
//
//  0. an empty code resolves to the fallback, a success code to 200 / OK;
//  1. exact override for the code (domain identity and raw value);
//  2. the code's own gRPC code, when its domain implements apis.GRPCNative
//     (HTTP uses the conventional status of that gRPC code);
//  3. longest-prefix match (LPM) on the label of the code's domain;
//  4. default for the code's generic classification;
//  5. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: labels are "."-separated segments and "*"
// matches exactly one segment. The more specific prefix wins:
//
//	WithHTTPPrefix("acme.storage", http.StatusServiceUnavailable)
//	WithHTTPPrefix("acme.*.pg", http.StatusBadGateway)
//
// # Library defaults
//
// Every errc classification has a default derived from its errc.Class
// (errc.NoSuchFileOrDirectory -> 404 / NotFound, errc.TimedOut -> 504 /
// DeadlineExceeded, ...). Because foreign domains map their values onto the
// generic classification, a single default covers posix errno values and any
// third-party domain alike.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPDefault(errc.OperationCanceled, 499), // nginx-style
//	    mapper.WithGRPCOverride(posix.Code(unix.EROFS), codes.FailedPrecondition),
//	)
//	if err != nil {
//	    // invalid prefix, empty override, ...
//	}
//	st := m.Status(code)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched and, for prefixes, which pattern was used. It
// is intended for inspection and logging, not for machine parsing.
//
// All inputs are copied during New; a Mapper is safe to share across
// goroutines.
package mapper
