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

package errc

// Generic classifications. Values follow Linux errno numbering.
const (
	Success                         Errc = 0
	OperationNotPermitted           Errc = 1
	NoSuchFileOrDirectory           Errc = 2
	NoSuchProcess                   Errc = 3
	Interrupted                     Errc = 4
	IOError                         Errc = 5
	NoSuchDeviceOrAddress           Errc = 6
	ArgumentListTooLong             Errc = 7
	ExecutableFormatError           Errc = 8
	BadFileDescriptor               Errc = 9
	NoChildProcess                  Errc = 10
	ResourceUnavailableTryAgain     Errc = 11
	NotEnoughMemory                 Errc = 12
	PermissionDenied                Errc = 13
	BadAddress                      Errc = 14
	DeviceOrResourceBusy            Errc = 16
	FileExists                      Errc = 17
	CrossDeviceLink                 Errc = 18
	NoSuchDevice                    Errc = 19
	NotADirectory                   Errc = 20
	IsADirectory                    Errc = 21
	InvalidArgument                 Errc = 22
	TooManyFilesOpenInSystem        Errc = 23
	TooManyFilesOpen                Errc = 24
	InappropriateIOControlOperation Errc = 25
	TextFileBusy                    Errc = 26
	FileTooLarge                    Errc = 27
	NoSpaceOnDevice                 Errc = 28
	InvalidSeek                     Errc = 29
	ReadOnlyFileSystem              Errc = 30
	TooManyLinks                    Errc = 31
	BrokenPipe                      Errc = 32
	ArgumentOutOfDomain             Errc = 33
	ResultOutOfRange                Errc = 34
	ResourceDeadlockWouldOccur      Errc = 35
	FilenameTooLong                 Errc = 36
	NoLockAvailable                 Errc = 37
	FunctionNotSupported            Errc = 38
	DirectoryNotEmpty               Errc = 39
	TooManySymbolicLinkLevels       Errc = 40
	NoMessage                       Errc = 42
	IdentifierRemoved               Errc = 43
	NoLink                          Errc = 67
	ProtocolError                   Errc = 71
	BadMessage                      Errc = 74
	ValueTooLarge                   Errc = 75
	IllegalByteSequence             Errc = 84
	NotASocket                      Errc = 88
	DestinationAddressRequired      Errc = 89
	MessageSize                     Errc = 90
	WrongProtocolType               Errc = 91
	NoProtocolOption                Errc = 92
	ProtocolNotSupported            Errc = 93
	NotSupported                    Errc = 95
	AddressFamilyNotSupported       Errc = 97
	AddressInUse                    Errc = 98
	AddressNotAvailable             Errc = 99
	NetworkDown                     Errc = 100
	NetworkUnreachable              Errc = 101
	NetworkReset                    Errc = 102
	ConnectionAborted               Errc = 103
	ConnectionReset                 Errc = 104
	NoBufferSpace                   Errc = 105
	AlreadyConnected                Errc = 106
	NotConnected                    Errc = 107
	TimedOut                        Errc = 110
	ConnectionRefused               Errc = 111
	HostUnreachable                 Errc = 113
	ConnectionAlreadyInProgress     Errc = 114
	OperationInProgress             Errc = 115
	OperationCanceled               Errc = 125
	OwnerDead                       Errc = 130
	StateNotRecoverable             Errc = 131
)

// Aliases that share a number with another entry on Linux.
const (
	OperationNotSupported = NotSupported
	OperationWouldBlock   = ResourceUnavailableTryAgain
)

// entry is one row of the generic table.
type entry struct {
	code  Errc
	name  string
	msg   string
	class Class
}

// table is the ordered generic table. Order is by value, which keeps All()
// stable across releases.
var table = [...]entry{
	{Success, "success", "Success", ClassNone},
	{OperationNotPermitted, "operation_not_permitted", "Operation not permitted", ClassPermission},
	{NoSuchFileOrDirectory, "no_such_file_or_directory", "No such file or directory", ClassNotFound},
	{NoSuchProcess, "no_such_process", "No such process", ClassNotFound},
	{Interrupted, "interrupted", "Interrupted system call", ClassCanceled},
	{IOError, "io_error", "Input/output error", ClassIO},
	{NoSuchDeviceOrAddress, "no_such_device_or_address", "No such device or address", ClassNotFound},
	{ArgumentListTooLong, "argument_list_too_long", "Argument list too long", ClassInvalid},
	{ExecutableFormatError, "executable_format_error", "Exec format error", ClassInvalid},
	{BadFileDescriptor, "bad_file_descriptor", "Bad file descriptor", ClassInvalid},
	{NoChildProcess, "no_child_process", "No child processes", ClassNotFound},
	{ResourceUnavailableTryAgain, "resource_unavailable_try_again", "Resource temporarily unavailable", ClassBusy},
	{NotEnoughMemory, "not_enough_memory", "Cannot allocate memory", ClassResource},
	{PermissionDenied, "permission_denied", "Permission denied", ClassPermission},
	{BadAddress, "bad_address", "Bad address", ClassInvalid},
	{DeviceOrResourceBusy, "device_or_resource_busy", "Device or resource busy", ClassBusy},
	{FileExists, "file_exists", "File exists", ClassExists},
	{CrossDeviceLink, "cross_device_link", "Invalid cross-device link", ClassInvalid},
	{NoSuchDevice, "no_such_device", "No such device", ClassNotFound},
	{NotADirectory, "not_a_directory", "Not a directory", ClassState},
	{IsADirectory, "is_a_directory", "Is a directory", ClassState},
	{InvalidArgument, "invalid_argument", "Invalid argument", ClassInvalid},
	{TooManyFilesOpenInSystem, "too_many_files_open_in_system", "Too many open files in system", ClassResource},
	{TooManyFilesOpen, "too_many_files_open", "Too many open files", ClassResource},
	{InappropriateIOControlOperation, "inappropriate_io_control_operation", "Inappropriate ioctl for device", ClassInvalid},
	{TextFileBusy, "text_file_busy", "Text file busy", ClassBusy},
	{FileTooLarge, "file_too_large", "File too large", ClassRange},
	{NoSpaceOnDevice, "no_space_on_device", "No space left on device", ClassResource},
	{InvalidSeek, "invalid_seek", "Illegal seek", ClassInvalid},
	{ReadOnlyFileSystem, "read_only_file_system", "Read-only file system", ClassPermission},
	{TooManyLinks, "too_many_links", "Too many links", ClassResource},
	{BrokenPipe, "broken_pipe", "Broken pipe", ClassNetwork},
	{ArgumentOutOfDomain, "argument_out_of_domain", "Numerical argument out of domain", ClassRange},
	{ResultOutOfRange, "result_out_of_range", "Numerical result out of range", ClassRange},
	{ResourceDeadlockWouldOccur, "resource_deadlock_would_occur", "Resource deadlock avoided", ClassBusy},
	{FilenameTooLong, "filename_too_long", "File name too long", ClassResource},
	{NoLockAvailable, "no_lock_available", "No locks available", ClassResource},
	{FunctionNotSupported, "function_not_supported", "Function not implemented", ClassUnsupported},
	{DirectoryNotEmpty, "directory_not_empty", "Directory not empty", ClassState},
	{TooManySymbolicLinkLevels, "too_many_symbolic_link_levels", "Too many levels of symbolic links", ClassState},
	{NoMessage, "no_message", "No message of desired type", ClassNotFound},
	{IdentifierRemoved, "identifier_removed", "Identifier removed", ClassNotFound},
	{NoLink, "no_link", "Link has been severed", ClassNotFound},
	{ProtocolError, "protocol_error", "Protocol error", ClassIO},
	{BadMessage, "bad_message", "Bad message", ClassInvalid},
	{ValueTooLarge, "value_too_large", "Value too large for defined data type", ClassRange},
	{IllegalByteSequence, "illegal_byte_sequence", "Invalid or incomplete multibyte or wide character", ClassInvalid},
	{NotASocket, "not_a_socket", "Socket operation on non-socket", ClassInvalid},
	{DestinationAddressRequired, "destination_address_required", "Destination address required", ClassInvalid},
	{MessageSize, "message_size", "Message too long", ClassInvalid},
	{WrongProtocolType, "wrong_protocol_type", "Protocol wrong type for socket", ClassInvalid},
	{NoProtocolOption, "no_protocol_option", "Protocol not available", ClassInvalid},
	{ProtocolNotSupported, "protocol_not_supported", "Protocol not supported", ClassUnsupported},
	{NotSupported, "not_supported", "Operation not supported", ClassUnsupported},
	{AddressFamilyNotSupported, "address_family_not_supported", "Address family not supported by protocol", ClassUnsupported},
	{AddressInUse, "address_in_use", "Address already in use", ClassExists},
	{AddressNotAvailable, "address_not_available", "Cannot assign requested address", ClassNetwork},
	{NetworkDown, "network_down", "Network is down", ClassNetwork},
	{NetworkUnreachable, "network_unreachable", "Network is unreachable", ClassNetwork},
	{NetworkReset, "network_reset", "Network dropped connection on reset", ClassNetwork},
	{ConnectionAborted, "connection_aborted", "Software caused connection abort", ClassNetwork},
	{ConnectionReset, "connection_reset", "Connection reset by peer", ClassNetwork},
	{NoBufferSpace, "no_buffer_space", "No buffer space available", ClassResource},
	{AlreadyConnected, "already_connected", "Transport endpoint is already connected", ClassState},
	{NotConnected, "not_connected", "Transport endpoint is not connected", ClassState},
	{TimedOut, "timed_out", "Connection timed out", ClassTimeout},
	{ConnectionRefused, "connection_refused", "Connection refused", ClassNetwork},
	{HostUnreachable, "host_unreachable", "No route to host", ClassNetwork},
	{ConnectionAlreadyInProgress, "connection_already_in_progress", "Operation already in progress", ClassBusy},
	{OperationInProgress, "operation_in_progress", "Operation now in progress", ClassBusy},
	{OperationCanceled, "operation_canceled", "Operation canceled", ClassCanceled},
	{OwnerDead, "owner_dead", "Owner died", ClassState},
	{StateNotRecoverable, "state_not_recoverable", "State not recoverable", ClassState},
}

// byCode and byName index the table for O(1) lookups.
var (
	byCode = func() map[Errc]*entry {
		m := make(map[Errc]*entry, len(table))
		for i := range table {
			m[table[i].code] = &table[i]
		}
		return m
	}()
	byName = func() map[string]Errc {
		m := make(map[string]Errc, len(table))
		for i := range table {
			m[table[i].name] = table[i].code
		}
		return m
	}()
)

// All returns every known generic classification, ordered by value.
// The slice is a fresh copy on each call.
func All() []Errc {
	out := make([]Errc, len(table))
	for i := range table {
		out[i] = table[i].code
	}
	return out
}
