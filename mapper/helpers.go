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
	"maps"
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"

	"dirpx.dev/statuscode"
)

// freeze detaches the snapshot from builder-owned maps. Empty maps become
// nil so lookups on them stay cheap.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

func erase(c statuscode.Code) statuscode.Erased {
	if c == nil {
		return statuscode.Erased{}
	}
	return c.Erase()
}

func labelOf(d statuscode.Domain) string {
	n := d.Name()
	s := n.String()
	n.Release()
	return s
}

func patternSuffix(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}

// grpcName renders c the way the gRPC wire protocol spells it, e.g.
// RESOURCE_EXHAUSTED.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
