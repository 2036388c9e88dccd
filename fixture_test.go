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

package statuscode_test

import (
	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/strref"
)

// fileCode is a small third-party style domain used across the tests. Odd
// values are failures.
type fileCode uint8

const (
	success1 fileCode = iota
	nospace
	success2
	error2
)

const fileID statuscode.ID = 0x430f120194fc06c7

func (fileCode) Domain() statuscode.Domain { return fileDomain }

// fileDomainImpl hands out shares of cached dynamic messages so tests can
// observe the reference counts.
type fileDomainImpl struct {
	statuscode.Base
	messages [4]strref.Ref
}

var fileDomain = newFileDomain()

func newFileDomain() *fileDomainImpl {
	return &fileDomainImpl{
		Base: statuscode.NewBase(fileID, "example.code"),
		messages: [4]strref.Ref{
			strref.New("success1"),
			strref.New("nospace"),
			strref.New("success2"),
			strref.New("error2"),
		},
	}
}

var nospaceGeneric = []errc.Errc{
	errc.FilenameTooLong,
	errc.NoBufferSpace,
	errc.NoSpaceOnDevice,
	errc.NotEnoughMemory,
	errc.TooManyFilesOpenInSystem,
	errc.TooManyFilesOpen,
	errc.TooManyLinks,
}

func (d *fileDomainImpl) ValidValue(raw uint64) bool {
	return statuscode.Fits[fileCode](raw)
}

func (d *fileDomainImpl) Failure(c statuscode.Erased) bool {
	statuscode.CheckOwner(d, c)
	return c.Value()&1 == 1
}

func (d *fileDomainImpl) Equivalent(c1, c2 statuscode.Erased) bool {
	statuscode.CheckOwner(d, c1)
	if c2.Empty() {
		return false
	}
	if statuscode.SameDomain(c2.Domain(), d) {
		return c1.Value() == c2.Value()
	}
	if !statuscode.SameDomain(c2.Domain(), statuscode.GenericDomain) {
		return false
	}
	g := errc.Errc(c2.Value())
	switch fileCode(c1.Value()) {
	case success1, success2:
		return g == errc.Success
	case nospace:
		for _, e := range nospaceGeneric {
			if g == e {
				return true
			}
		}
	}
	return false
}

func (d *fileDomainImpl) GenericCode(c statuscode.Erased) statuscode.GenericCode {
	statuscode.CheckOwner(d, c)
	switch fileCode(c.Value()) {
	case success1, success2:
		return statuscode.Generic(errc.Success)
	case nospace:
		return statuscode.Generic(errc.NoBufferSpace)
	}
	return statuscode.GenericCode{}
}

func (d *fileDomainImpl) Message(c statuscode.Erased) strref.Ref {
	statuscode.CheckOwner(d, c)
	if v := c.Value(); v < uint64(len(d.messages)) {
		m := d.messages[v]
		return strref.FromState(m.String(), m.State())
	}
	return strref.Literal("unknown")
}

// Raise is inherited from Base.
var (
	_ statuscode.Domain     = (*fileDomainImpl)(nil)
	_ statuscode.ValueRange = (*fileDomainImpl)(nil)
)
