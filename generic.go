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

package statuscode

import (
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/strref"
)

// GenericID is the identity of GenericDomain.
const GenericID ID = 0x746d6354e2d3c1b9

// GenericCode is a status code of the generic domain.
type GenericCode = StatusCode[errc.Errc]

// GenericDomain is the built-in domain of errc classifications. It is the
// interoperability hub: domains map their values onto it instead of knowing
// each other.
var GenericDomain Domain = genericDomain{Base: NewBase(GenericID, "posix.generic")}

// Generic returns the generic code for e.
func Generic(e errc.Errc) GenericCode {
	return GenericCode{domain: GenericDomain, value: e}
}

type genericDomain struct {
	Base
}

// ValidValue reports whether raw fits an errc.Errc.
func (d genericDomain) ValidValue(raw uint64) bool { return Fits[errc.Errc](raw) }

func (d genericDomain) Failure(c Erased) bool {
	CheckOwner(d, c)
	return errc.Errc(c.value) != errc.Success
}

// Equivalent compares raw values within the domain. For a foreign code it
// asks the foreign domain for its generic mapping, which is the reverse of
// what the foreign domain's own Equivalent does.
func (d genericDomain) Equivalent(c1, c2 Erased) bool {
	CheckOwner(d, c1)
	if c2.domain == nil {
		return false
	}
	if SameDomain(c2.domain, d) {
		return c1.value == c2.value
	}
	g := c2.domain.GenericCode(c2)
	return !g.Empty() && g.value == errc.Errc(c1.value)
}

func (d genericDomain) GenericCode(c Erased) GenericCode {
	CheckOwner(d, c)
	return GenericCode{domain: d, value: errc.Errc(c.value)}
}

func (d genericDomain) Message(c Erased) strref.Ref {
	CheckOwner(d, c)
	e := errc.Errc(c.value)
	if !e.Known() {
		return strref.New(e.Message())
	}
	return strref.Literal(e.Message())
}
