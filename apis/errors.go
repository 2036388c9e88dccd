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

import "dirpx.dev/statuscode"

// CodedError is an error that carries a status code. *statuscode.Error
// implements it; adapters use it to find the code without depending on the
// concrete error type.
type CodedError interface {
	error

	// Code returns the erased status code. It may be empty, which adapters
	// treat as an internal error.
	Code() statuscode.Erased
}

var _ CodedError = (*statuscode.Error)(nil)
