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

package grpcx

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/apis"
)

// Metadata keys of the ErrorInfo detail.
const (
	MetaDomainID      = "domain_id"
	MetaValue         = "value"
	MetaGeneric       = "generic"
	MetaCorrelationID = "correlation_id"
	MetaTraceID       = "trace_id"
	MetaSpanID        = "span_id"
)

// Extras holds optional request metadata that is attached to the status.
// All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string

	// TraceID and SpanID identify the distributed trace.
	TraceID string
	SpanID  string

	// RetryDelay, when positive, is sent as an errdetails.RetryInfo.
	RetryDelay time.Duration
}

// builtin decodes codes when the caller supplies no registry.
var builtin = mustRegistry(Domain)

func mustRegistry(domains ...statuscode.Domain) *statuscode.Registry {
	r, err := statuscode.NewRegistry(domains...)
	if err != nil {
		panic(err)
	}
	return r
}

// ToStatus converts c into a gRPC status. The gRPC code comes from m; the
// code itself travels in an errdetails.ErrorInfo whose Domain is the domain
// label. An empty code yields codes.Internal without details.
func ToStatus(c statuscode.Code, m apis.Mapper, ex Extras) *status.Status {
	gc := m.GRPCStatus(c)
	if c == nil || c.Empty() {
		return status.New(gc, "empty status code")
	}
	e := c.Erase()
	base := status.New(gc, e.Message())

	details := []protoadapt.MessageV1{errorInfo(e, ex)}
	if ex.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}
	with, err := base.WithDetails(details...)
	if err != nil {
		return base
	}
	return with
}

func errorInfo(e statuscode.Erased, ex Extras) *errdetails.ErrorInfo {
	name := e.Domain().Name()
	defer name.Release()

	info := &errdetails.ErrorInfo{
		Reason: "STATUS_CODE",
		Domain: name.String(),
		Metadata: map[string]string{
			MetaDomainID: e.Domain().ID().String(),
			MetaValue:    strconv.FormatUint(e.Value(), 10),
		},
	}
	if g := e.GenericCode(); !g.Empty() {
		info.Reason = strings.ToUpper(g.Value().String())
		info.Metadata[MetaGeneric] = g.Value().String()
	}
	for k, v := range map[string]string{
		MetaCorrelationID: ex.CorrelationID,
		MetaTraceID:       ex.TraceID,
		MetaSpanID:        ex.SpanID,
	} {
		if v != "" {
			info.Metadata[k] = v
		}
	}
	return info
}

// FromStatus rebuilds the status code carried by st. Codes of domains known
// to reg (or to the built-in registry when reg is nil) are restored exactly;
// anything else is returned as a code of Domain.
func FromStatus(st *status.Status, reg *statuscode.Registry) statuscode.Erased {
	if st == nil {
		return Code(codes.OK).Erase()
	}
	if reg == nil {
		reg = builtin
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		if c, ok := decodeInfo(info, reg); ok {
			return c
		}
	}
	return Code(st.Code()).Erase()
}

func decodeInfo(info *errdetails.ErrorInfo, reg *statuscode.Registry) (statuscode.Erased, bool) {
	id, err := statuscode.ParseID(info.GetMetadata()[MetaDomainID])
	if err != nil {
		return statuscode.Erased{}, false
	}
	raw, err := strconv.ParseUint(info.GetMetadata()[MetaValue], 10, 64)
	if err != nil {
		return statuscode.Erased{}, false
	}
	c, err := reg.Decode(id, raw)
	if err != nil {
		return statuscode.Erased{}, false
	}
	return c, true
}

// FromError extracts a status code from err. A *statuscode.Error anywhere in
// the chain wins; otherwise a gRPC status error is decoded with FromStatus.
func FromError(err error, reg *statuscode.Registry) (statuscode.Erased, bool) {
	if err == nil {
		return statuscode.Erased{}, false
	}
	if c, ok := statuscode.FromError(err); ok {
		return c, true
	}
	var se interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &se) {
		return statuscode.Erased{}, false
	}
	return FromStatus(se.GRPCStatus(), reg), true
}

// RetryDelay returns the delay of the first errdetails.RetryInfo in st.
func RetryDelay(st *status.Status) (time.Duration, bool) {
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}
