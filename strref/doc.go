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

// Package strref provides Ref, a small value handle to immutable message text.
//
// A Ref either views a statically-known string (a literal) or owns a share of
// a dynamically produced, reference-counted buffer. Literals never allocate
// and carry no ownership. Dynamic refs allocate exactly once, when the text is
// first wrapped with New; every further Copy only bumps the shared counter.
//
// Ownership is explicit, because domains hand out cached messages and the
// counter must stay balanced:
//
//	r := strref.New(text) // count = 1
//	c := r.Copy()         // count = 2
//	m := c.Move()         // count = 2, c is now empty
//	m.Release()           // count = 1
//	r.Release()           // count = 0, buffer text dropped
//
// The counter is atomic, so independent copies may be created and released
// from different goroutines. A single Ref value must not be mutated (Move,
// Release) concurrently.
package strref
