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

// ErrorDescriptor is a flat description of a code together with the
// transport statuses it resolved to. It is meant for structured logging,
// tracing and message bus propagation.
type ErrorDescriptor struct {
	Domain   string `json:"domain"`
	DomainID string `json:"domain_id"`
	Value    string `json:"value"`
	Generic  string `json:"generic,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	Message string `json:"message,omitempty"`
}
