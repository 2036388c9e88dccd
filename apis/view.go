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

package apis

// ErrorView is a minimal, serializable representation of a status code.
//
// It is the shape that is safe to expose over the wire or in logs: names and
// numbers only, no causes.
type ErrorView struct {
	// Domain is the label of the code's domain, e.g. "posix.errno".
	Domain string `json:"domain"`

	// DomainID is the hex identity of the domain, e.g. "0xa1b4f0e6c2d38857".
	DomainID string `json:"domain_id"`

	// Value is the raw value in decimal. It is a string so that 64-bit
	// values survive JSON number handling.
	Value string `json:"value"`

	// Message is the human-readable text for the code.
	Message string `json:"message,omitempty"`

	// Generic is the name of the generic classification, if any.
	Generic string `json:"generic,omitempty"`

	// Failure reports whether the domain classifies the code as a failure.
	Failure bool `json:"failure"`
}
