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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
)

// key identifies one code of one domain.
type key struct {
	id    statuscode.ID
	value uint64
}

type prefixRule struct {
	// prefix is the raw, dot-separated label prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	val    int
}

type builder struct {
	httpDefaults map[errc.Errc]int
	grpcDefaults map[errc.Errc]codes.Code

	httpOverride map[key]int
	grpcOverride map[key]codes.Code

	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	fallbackHTTP int
	fallbackGRPC codes.Code

	// errs collects option misuse reported by New.
	errs []error
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[errc.Errc]int, len(errc.All())),
		grpcDefaults: make(map[errc.Errc]codes.Code, len(errc.All())),

		httpOverride: make(map[key]int),
		grpcOverride: make(map[key]codes.Code),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
