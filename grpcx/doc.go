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

// Package grpcx bridges status codes and gRPC.
//
// It provides three things:
//
//   - Domain, the status code domain of gRPC codes.Code values, so a gRPC
//     status can take part in cross-domain comparisons like any other code;
//   - ToStatus and FromStatus, which carry a code of any domain across the
//     wire inside an errdetails.ErrorInfo and rebuild it on the other side
//     through a statuscode.Registry;
//   - unary interceptors that apply both directions automatically.
package grpcx
