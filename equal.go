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

// Equal reports whether a and b denote the same condition.
//
// Empty codes (including nil) equal only other empty codes. Otherwise a's
// domain is asked first; when it does not recognise b, b's domain is asked
// the reverse question. The result is therefore symmetric even though each
// domain only answers for its own codes.
func Equal(a, b Code) bool {
	ea, eb := erase(a), erase(b)
	if ea.domain == nil || eb.domain == nil {
		return ea.domain == nil && eb.domain == nil
	}
	if ea.domain.Equivalent(ea, eb) {
		return true
	}
	return eb.domain.Equivalent(eb, ea)
}

func erase(c Code) Erased {
	if c == nil {
		return Erased{}
	}
	return c.Erase()
}
