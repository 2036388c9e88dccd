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

// Package errc holds the generic, POSIX-like classification that every status
// code domain maps into.
//
// An Errc is an errno-style integer. The package ships the full table of
// {value, canonical name, message, class} entries; values use Linux errno
// numbering, and Success (0) is the only non-failure value.
//
// Canonical names are lowercase and underscore-separated, e.g.
// "no_buffer_space" or "too_many_files_open", which makes them suitable for
// JSON payloads, wire metadata and configuration. Parse accepts the usual
// sloppy spellings ("No-Buffer-Space") and normalizes them first.
//
// The class of an entry is a coarse equivalence group (resource exhaustion,
// permission, not found, ...) that transport mappers use to choose a default
// status without listing every value.
package errc
