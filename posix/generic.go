//go:build linux || darwin

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

package posix

import (
	"golang.org/x/sys/unix"

	"dirpx.dev/statuscode/errc"
)

// mapping lists errno symbols with their generic classification. Some
// symbols share a number on some platforms (EAGAIN and EWOULDBLOCK on both,
// ENOTSUP and EOPNOTSUPP on linux); the first entry for a number wins.
var mapping = []struct {
	errno unix.Errno
	errc  errc.Errc
}{
	{unix.EPERM, errc.OperationNotPermitted},
	{unix.ENOENT, errc.NoSuchFileOrDirectory},
	{unix.ESRCH, errc.NoSuchProcess},
	{unix.EINTR, errc.Interrupted},
	{unix.EIO, errc.IOError},
	{unix.ENXIO, errc.NoSuchDeviceOrAddress},
	{unix.E2BIG, errc.ArgumentListTooLong},
	{unix.ENOEXEC, errc.ExecutableFormatError},
	{unix.EBADF, errc.BadFileDescriptor},
	{unix.ECHILD, errc.NoChildProcess},
	{unix.EAGAIN, errc.ResourceUnavailableTryAgain},
	{unix.EWOULDBLOCK, errc.OperationWouldBlock},
	{unix.ENOMEM, errc.NotEnoughMemory},
	{unix.EACCES, errc.PermissionDenied},
	{unix.EFAULT, errc.BadAddress},
	{unix.EBUSY, errc.DeviceOrResourceBusy},
	{unix.EEXIST, errc.FileExists},
	{unix.EXDEV, errc.CrossDeviceLink},
	{unix.ENODEV, errc.NoSuchDevice},
	{unix.ENOTDIR, errc.NotADirectory},
	{unix.EISDIR, errc.IsADirectory},
	{unix.EINVAL, errc.InvalidArgument},
	{unix.ENFILE, errc.TooManyFilesOpenInSystem},
	{unix.EMFILE, errc.TooManyFilesOpen},
	{unix.ENOTTY, errc.InappropriateIOControlOperation},
	{unix.ETXTBSY, errc.TextFileBusy},
	{unix.EFBIG, errc.FileTooLarge},
	{unix.ENOSPC, errc.NoSpaceOnDevice},
	{unix.ESPIPE, errc.InvalidSeek},
	{unix.EROFS, errc.ReadOnlyFileSystem},
	{unix.EMLINK, errc.TooManyLinks},
	{unix.EPIPE, errc.BrokenPipe},
	{unix.EDOM, errc.ArgumentOutOfDomain},
	{unix.ERANGE, errc.ResultOutOfRange},
	{unix.EDEADLK, errc.ResourceDeadlockWouldOccur},
	{unix.ENAMETOOLONG, errc.FilenameTooLong},
	{unix.ENOLCK, errc.NoLockAvailable},
	{unix.ENOSYS, errc.FunctionNotSupported},
	{unix.ENOTEMPTY, errc.DirectoryNotEmpty},
	{unix.ELOOP, errc.TooManySymbolicLinkLevels},
	{unix.ENOMSG, errc.NoMessage},
	{unix.EIDRM, errc.IdentifierRemoved},
	{unix.ENOLINK, errc.NoLink},
	{unix.EPROTO, errc.ProtocolError},
	{unix.EBADMSG, errc.BadMessage},
	{unix.EOVERFLOW, errc.ValueTooLarge},
	{unix.EILSEQ, errc.IllegalByteSequence},
	{unix.ENOTSOCK, errc.NotASocket},
	{unix.EDESTADDRREQ, errc.DestinationAddressRequired},
	{unix.EMSGSIZE, errc.MessageSize},
	{unix.EPROTOTYPE, errc.WrongProtocolType},
	{unix.ENOPROTOOPT, errc.NoProtocolOption},
	{unix.EPROTONOSUPPORT, errc.ProtocolNotSupported},
	{unix.ENOTSUP, errc.NotSupported},
	{unix.EOPNOTSUPP, errc.OperationNotSupported},
	{unix.EAFNOSUPPORT, errc.AddressFamilyNotSupported},
	{unix.EADDRINUSE, errc.AddressInUse},
	{unix.EADDRNOTAVAIL, errc.AddressNotAvailable},
	{unix.ENETDOWN, errc.NetworkDown},
	{unix.ENETUNREACH, errc.NetworkUnreachable},
	{unix.ENETRESET, errc.NetworkReset},
	{unix.ECONNABORTED, errc.ConnectionAborted},
	{unix.ECONNRESET, errc.ConnectionReset},
	{unix.ENOBUFS, errc.NoBufferSpace},
	{unix.EISCONN, errc.AlreadyConnected},
	{unix.ENOTCONN, errc.NotConnected},
	{unix.ETIMEDOUT, errc.TimedOut},
	{unix.ECONNREFUSED, errc.ConnectionRefused},
	{unix.EHOSTUNREACH, errc.HostUnreachable},
	{unix.EALREADY, errc.ConnectionAlreadyInProgress},
	{unix.EINPROGRESS, errc.OperationInProgress},
	{unix.ECANCELED, errc.OperationCanceled},
	{unix.EOWNERDEAD, errc.OwnerDead},
	{unix.ENOTRECOVERABLE, errc.StateNotRecoverable},
}

var toErrc = func() map[unix.Errno]errc.Errc {
	m := make(map[unix.Errno]errc.Errc, len(mapping))
	for _, p := range mapping {
		if _, dup := m[p.errno]; !dup {
			m[p.errno] = p.errc
		}
	}
	return m
}()

func toGeneric(e unix.Errno) (errc.Errc, bool) {
	if e == 0 {
		return errc.Success, true
	}
	g, ok := toErrc[e]
	return g, ok
}
