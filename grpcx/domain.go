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
	"google.golang.org/grpc/codes"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/apis"
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/strref"
)

// ID is the identity of Domain.
const ID statuscode.ID = 0x5c3a9e71d04b2f86

// StatusCode is a status code of the gRPC domain.
type StatusCode = statuscode.StatusCode[codes.Code]

// Domain is the domain of gRPC status codes.
var Domain statuscode.Domain = domain{Base: statuscode.NewBase(ID, "grpc.status")}

// Code binds c to Domain.
func Code(c codes.Code) StatusCode {
	return statuscode.New(Domain, c)
}

// equivalents lists, per gRPC code, the generic classifications it stands
// for. The first entry is the code's generic mapping. Codes without entries
// (Unknown, Internal, Unauthenticated) have no generic meaning.
var equivalents = map[codes.Code][]errc.Errc{
	codes.OK:               {errc.Success},
	codes.Canceled:         {errc.OperationCanceled, errc.Interrupted},
	codes.InvalidArgument:  {errc.InvalidArgument, errc.BadAddress, errc.IllegalByteSequence, errc.BadMessage, errc.ArgumentOutOfDomain},
	codes.DeadlineExceeded: {errc.TimedOut},
	codes.NotFound:         {errc.NoSuchFileOrDirectory, errc.NoSuchDevice, errc.NoSuchDeviceOrAddress, errc.NoSuchProcess},
	codes.AlreadyExists:    {errc.FileExists, errc.AddressInUse},
	codes.PermissionDenied: {errc.PermissionDenied, errc.OperationNotPermitted, errc.ReadOnlyFileSystem},
	codes.ResourceExhausted: {
		errc.NoBufferSpace,
		errc.NoSpaceOnDevice,
		errc.NotEnoughMemory,
		errc.TooManyFilesOpen,
		errc.TooManyFilesOpenInSystem,
		errc.TooManyLinks,
		errc.FilenameTooLong,
	},
	codes.FailedPrecondition: {errc.DirectoryNotEmpty, errc.NotADirectory, errc.IsADirectory},
	codes.Aborted:            {errc.ResourceDeadlockWouldOccur},
	codes.OutOfRange:         {errc.ResultOutOfRange, errc.ValueTooLarge},
	codes.Unimplemented:      {errc.FunctionNotSupported, errc.NotSupported, errc.ProtocolNotSupported, errc.AddressFamilyNotSupported},
	codes.Unavailable: {
		errc.ResourceUnavailableTryAgain,
		errc.NetworkDown,
		errc.NetworkUnreachable,
		errc.HostUnreachable,
		errc.ConnectionRefused,
		errc.DeviceOrResourceBusy,
	},
	codes.DataLoss: {errc.IOError},
}

type domain struct {
	statuscode.Base
}

// ValidValue reports whether raw fits a codes.Code.
func (d domain) ValidValue(raw uint64) bool {
	return statuscode.Fits[codes.Code](raw)
}

// GRPCCode lets mappers keep a forwarded gRPC code as it is.
func (d domain) GRPCCode(c statuscode.Erased) (codes.Code, bool) {
	statuscode.CheckOwner(d, c)
	gc := codes.Code(c.Value())
	return gc, c.Value() <= uint64(codes.Unauthenticated)
}

func (d domain) Failure(c statuscode.Erased) bool {
	statuscode.CheckOwner(d, c)
	return codes.Code(c.Value()) != codes.OK
}

// Equivalent recognises gRPC codes by value and any other code through its
// generic classification.
func (d domain) Equivalent(c1, c2 statuscode.Erased) bool {
	statuscode.CheckOwner(d, c1)
	if c2.Empty() {
		return false
	}
	if statuscode.SameDomain(c2.Domain(), d) {
		return c1.Value() == c2.Value()
	}
	g := errc.Errc(c2.Value())
	if !statuscode.SameDomain(c2.Domain(), statuscode.GenericDomain) {
		gc := c2.GenericCode()
		if gc.Empty() {
			return false
		}
		g = gc.Value()
	}
	for _, e := range equivalents[codes.Code(c1.Value())] {
		if e == g {
			return true
		}
	}
	return false
}

func (d domain) GenericCode(c statuscode.Erased) statuscode.GenericCode {
	statuscode.CheckOwner(d, c)
	if eq := equivalents[codes.Code(c.Value())]; len(eq) > 0 {
		return statuscode.Generic(eq[0])
	}
	return statuscode.GenericCode{}
}

func (d domain) Message(c statuscode.Erased) strref.Ref {
	statuscode.CheckOwner(d, c)
	gc := codes.Code(c.Value())
	if gc > codes.Unauthenticated {
		return strref.New(gc.String())
	}
	return strref.Literal(gc.String())
}

var (
	_ statuscode.ValueRange = domain{}
	_ apis.GRPCNative       = domain{}
)
