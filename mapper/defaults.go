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

	"dirpx.dev/statuscode/errc"
)

// classHTTP is the HTTP status for each generic class. Per-Errc defaults are
// seeded from it.
var classHTTP = map[errc.Class]int{
	errc.ClassNone:        http.StatusOK,
	errc.ClassInvalid:     http.StatusBadRequest,
	errc.ClassRange:       http.StatusBadRequest,
	errc.ClassNotFound:    http.StatusNotFound,
	errc.ClassExists:      http.StatusConflict,
	errc.ClassPermission:  http.StatusForbidden,
	errc.ClassResource:    http.StatusServiceUnavailable,
	errc.ClassBusy:        http.StatusServiceUnavailable,
	errc.ClassTimeout:     http.StatusGatewayTimeout,
	errc.ClassCanceled:    http.StatusRequestTimeout, // 499 is common too; override per Errc.
	errc.ClassUnsupported: http.StatusNotImplemented,
	errc.ClassNetwork:     http.StatusBadGateway,
	errc.ClassState:       http.StatusConflict,
	errc.ClassIO:          http.StatusInternalServerError,
}

// classGRPC is the gRPC code for each generic class.
var classGRPC = map[errc.Class]codes.Code{
	errc.ClassNone:        codes.OK,
	errc.ClassInvalid:     codes.InvalidArgument,
	errc.ClassRange:       codes.OutOfRange,
	errc.ClassNotFound:    codes.NotFound,
	errc.ClassExists:      codes.AlreadyExists,
	errc.ClassPermission:  codes.PermissionDenied,
	errc.ClassResource:    codes.ResourceExhausted,
	errc.ClassBusy:        codes.Unavailable,
	errc.ClassTimeout:     codes.DeadlineExceeded,
	errc.ClassCanceled:    codes.Canceled,
	errc.ClassUnsupported: codes.Unimplemented,
	errc.ClassNetwork:     codes.Unavailable,
	errc.ClassState:       codes.FailedPrecondition,
	errc.ClassIO:          codes.Internal,
}

// nativeHTTP is the conventional HTTP status of each gRPC code, used for
// codes of domains implementing apis.GRPCNative.
var nativeHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           499,
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

func httpFromGRPC(c codes.Code) (int, bool) {
	v, ok := nativeHTTP[c]
	return v, ok
}

func grpcFromGRPC(c codes.Code) (codes.Code, bool) { return c, true }

// seedDefaults fills b with one default per known Errc.
func seedDefaults(b *builder) {
	for _, e := range errc.All() {
		if v, ok := classHTTP[e.Class()]; ok {
			b.httpDefaults[e] = v
		}
		if v, ok := classGRPC[e.Class()]; ok {
			b.grpcDefaults[e] = v
		}
	}
}
