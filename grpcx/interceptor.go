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
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/apis"
)

// MetaFn extracts Extras from the request context and the failing error.
// It may return an empty Extras.
type MetaFn func(ctx context.Context, e *statuscode.Error) Extras

type options struct {
	logger *slog.Logger
	meta   MetaFn
}

// Option configures the interceptors.
type Option func(*options)

// WithLogger sets the logger used to report converted errors. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetaFn sets the function that supplies Extras for each error.
func WithMetaFn(fn MetaFn) Option {
	return func(o *options) {
		if fn != nil {
			o.meta = fn
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		meta:   func(context.Context, *statuscode.Error) Extras { return Extras{} },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns a
// *statuscode.Error returned (or raised) by the handler into a gRPC status
// error built by ToStatus.
//
// Errors that carry no status code are returned as-is. A *statuscode.Error
// whose code is empty or a success becomes codes.Internal.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		if raised := statuscode.Catch(func() { resp, err = handler(ctx, req) }); raised != nil {
			resp, err = nil, raised
		}
		if err == nil {
			return resp, nil
		}

		var se *statuscode.Error
		if !errors.As(err, &se) {
			return nil, err
		}
		if !se.Code().Failure() {
			// A non-failure code would map to OK and drop the error.
			o.logger.LogAttrs(ctx, slog.LevelError, "rpc returned a non-failure status code",
				slog.String("method", info.FullMethod),
				slog.Any("error", se),
			)
			return nil, status.Errorf(codes.Internal, "non-failure status code returned as error: %v", se)
		}

		st := ToStatus(se.Code(), m, o.meta(ctx, se))
		o.logger.LogAttrs(ctx, levelFor(st.Code()), "rpc failed",
			slog.String("method", info.FullMethod),
			slog.String("grpc_code", st.Code().String()),
			slog.Any("error", se),
		)
		return nil, st.Err()
	}
}

// levelFor logs server-side faults as errors and caller mistakes as
// warnings.
func levelFor(c codes.Code) slog.Level {
	switch c {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors into *statuscode.Error values decoded through reg. The
// original status error stays reachable with errors.As.
func UnaryClientInterceptor(reg *statuscode.Registry) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		st, ok := status.FromError(err)
		if !ok || st.Code() == codes.OK {
			return err
		}
		return statuscode.NewError(FromStatus(st, reg), statuscode.WithCauseOption(err))
	}
}
