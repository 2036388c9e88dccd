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

// Package posix provides the status code domain of operating system errno
// values.
//
// Codes are unix.Errno values bound to Domain. Each errno maps onto the
// generic classification by its symbolic name, so the mapping holds on every
// supported platform even though the numbers differ.
//
//	if c, ok := posix.FromError(err); ok && c.Equal(statuscode.Generic(errc.NoSpaceOnDevice)) {
//	    ...
//	}
package posix

import (
	"errors"
	"sync"

	"golang.org/x/sys/unix"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/strref"
)

// ID is the identity of Domain.
const ID statuscode.ID = 0xa1b4f0e6c2d38857

// StatusCode is a status code of the posix domain.
type StatusCode = statuscode.StatusCode[unix.Errno]

// Domain is the posix errno domain.
var Domain statuscode.Domain = newDomain()

// Code binds e to Domain.
func Code(e unix.Errno) StatusCode {
	return statuscode.New(Domain, e)
}

// FromError finds a unix.Errno in err's chain and returns it as a code.
func FromError(err error) (StatusCode, bool) {
	var e unix.Errno
	if !errors.As(err, &e) {
		return StatusCode{}, false
	}
	return Code(e), true
}

// Err returns err unchanged unless it carries an errno, in which case the
// result is a *statuscode.Error for that errno with err as its cause.
func Err(err error) error {
	c, ok := FromError(err)
	if !ok || !c.Failure() {
		return err
	}
	return statuscode.NewError(c, statuscode.WithCauseOption(err))
}

type domain struct {
	statuscode.Base

	mu       sync.RWMutex
	messages map[unix.Errno]strref.Ref
}

func newDomain() *domain {
	return &domain{
		Base:     statuscode.NewBase(ID, "posix.errno"),
		messages: make(map[unix.Errno]strref.Ref),
	}
}

// ValidValue reports whether raw fits a unix.Errno.
func (d *domain) ValidValue(raw uint64) bool {
	return statuscode.Fits[unix.Errno](raw)
}

func (d *domain) Failure(c statuscode.Erased) bool {
	statuscode.CheckOwner(d, c)
	return c.Value() != 0
}

func (d *domain) Equivalent(c1, c2 statuscode.Erased) bool {
	statuscode.CheckOwner(d, c1)
	if c2.Empty() {
		return false
	}
	if statuscode.SameDomain(c2.Domain(), d) {
		return c1.Value() == c2.Value()
	}
	if statuscode.SameDomain(c2.Domain(), statuscode.GenericDomain) {
		g, ok := toGeneric(unix.Errno(c1.Value()))
		return ok && uint64(g) == c2.Value()
	}
	return false
}

func (d *domain) GenericCode(c statuscode.Erased) statuscode.GenericCode {
	statuscode.CheckOwner(d, c)
	g, ok := toGeneric(unix.Errno(c.Value()))
	if !ok {
		return statuscode.GenericCode{}
	}
	return statuscode.Generic(g)
}

// Message returns a share of the cached text for the errno. The text of a
// known errno is built once and lives for the life of the process; any other
// value (typically decoded off the wire) gets a fresh uncached buffer, so the
// cache never grows beyond the mapping table.
func (d *domain) Message(c statuscode.Erased) strref.Ref {
	statuscode.CheckOwner(d, c)
	e := unix.Errno(c.Value())
	if e == 0 {
		return strref.Literal("success")
	}
	if _, known := toErrc[e]; !known {
		return strref.New(e.Error())
	}

	d.mu.RLock()
	m, ok := d.messages[e]
	d.mu.RUnlock()
	if !ok {
		d.mu.Lock()
		if m, ok = d.messages[e]; !ok {
			m = strref.New(e.Error())
			d.messages[e] = m
		}
		d.mu.Unlock()
	}
	return strref.FromState(m.String(), m.State())
}

var (
	_ statuscode.Domain     = (*domain)(nil)
	_ statuscode.ValueRange = (*domain)(nil)
)
