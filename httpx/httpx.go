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

// Package httpx writes status codes as JSON HTTP responses.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/adapter"
	"dirpx.dev/statuscode/apis"
)

// Meta carries extra context that the HTTP layer can add on top of a status
// code. All fields are optional and typically come from request context,
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that turns status codes into HTTP responses using
// the provided mapper.
type Writer struct {
	Mapper apis.Mapper

	// Logger receives failures of handlers wrapped with Handler. Nil means
	// slog.Default().
	Logger *slog.Logger

	// MetaFn, when set, supplies Meta for responses written by Handler.
	MetaFn func(*http.Request) Meta
}

// Write serializes c as a JSON object built from apis.ErrorView plus meta
// and writes it with the status resolved by the Mapper.
//
// No redaction is performed: the domain's message for c is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, c statuscode.Code, meta Meta) {
	st := w.Mapper.Status(c)
	v := adapter.ToView(c)

	fields := map[string]any{
		"domain":    v.Domain,
		"domain_id": v.DomainID,
		"value":     v.Value,
		"message":   v.Message,
		"failure":   v.Failure,
	}
	if v.Domain == "" {
		fields = map[string]any{"message": "empty status code"}
	}
	if v.Generic != "" {
		fields["generic"] = v.Generic
	}
	addMeta(fields, meta)

	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	w.writeJSON(rw, st.HTTP, fields)
}

// Handler adapts fn to http.Handler. When fn returns (or raises) a
// *statuscode.Error carrying a failure, the error's code is written with
// Write. Any other error, including a *statuscode.Error whose code is empty
// or a success, is logged and answered with 500 and a generic message.
//
// If fn already started the response before failing, the error is only
// logged.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: rw}
		var err error
		if raised := statuscode.Catch(func() { err = fn(tw, r) }); raised != nil {
			err = raised
		}
		if err == nil {
			return
		}

		var se *statuscode.Error
		isCode := errors.As(err, &se) && se.Code().Failure()

		if tw.started {
			w.logger().LogAttrs(r.Context(), slog.LevelError, "request failed after response started",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
			return
		}

		var meta Meta
		if w.MetaFn != nil {
			meta = w.MetaFn(r)
		}

		if isCode {
			w.logger().LogAttrs(r.Context(), slog.LevelWarn, "request failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", se),
			)
			w.Write(rw, se.Code(), meta)
			return
		}

		w.logger().LogAttrs(r.Context(), slog.LevelError, "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		fields := map[string]any{"message": "internal error"}
		addMeta(fields, meta)
		w.writeJSON(rw, http.StatusInternalServerError, fields)
	})
}

// trackingWriter records whether the wrapped handler started the response.
type trackingWriter struct {
	http.ResponseWriter
	started bool
}

func (t *trackingWriter) WriteHeader(code int) {
	t.started = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (t *trackingWriter) Unwrap() http.ResponseWriter { return t.ResponseWriter }

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

func addMeta(fields map[string]any, meta Meta) {
	for k, v := range map[string]string{
		"correlation": meta.Correlation,
		"trace_id":    meta.TraceID,
		"span_id":     meta.SpanID,
	} {
		if v != "" {
			fields[k] = v
		}
	}
	if meta.RetryAfterSeconds > 0 {
		fields["retry_after_seconds"] = meta.RetryAfterSeconds
	}
}

func (w Writer) writeJSON(rw http.ResponseWriter, code int, fields map[string]any) {
	body, err := structpb.NewStruct(fields)
	if err != nil {
		// unreachable: fields hold only strings, bools and int32
		code, body = http.StatusInternalServerError, &structpb.Struct{}
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(body)
	_, _ = rw.Write(b)
}
