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

package grpcx_test

import (
	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/strref"
)

type gaugeCode uint32

const (
	gaugeOK gaugeCode = iota
	gaugeQuota
	gaugeBroken
)

const gaugeID statuscode.ID = 0x0b5e_7a11_0000_0001

func (gaugeCode) Domain() statuscode.Domain { return gaugeDomain }

type gauge struct{ statuscode.Base }

var gaugeDomain = gauge{Base: statuscode.NewBase(gaugeID, "acme.gauge")}

var gaugeMessages = [...]string{"ok", "quota exceeded", "gauge broken"}

func (d gauge) Failure(c statuscode.Erased) bool {
	statuscode.CheckOwner(d, c)
	return gaugeCode(c.Value()) != gaugeOK
}

func (d gauge) Equivalent(c1, c2 statuscode.Erased) bool {
	statuscode.CheckOwner(d, c1)
	if statuscode.SameDomain(c2.Domain(), d) {
		return c1.Value() == c2.Value()
	}
	g := d.GenericCode(c1)
	return !g.Empty() && statuscode.SameDomain(c2.Domain(), statuscode.GenericDomain) && uint64(g.Value()) == c2.Value()
}

func (d gauge) GenericCode(c statuscode.Erased) statuscode.GenericCode {
	statuscode.CheckOwner(d, c)
	switch gaugeCode(c.Value()) {
	case gaugeOK:
		return statuscode.Generic(errc.Success)
	case gaugeQuota:
		return statuscode.Generic(errc.NoSpaceOnDevice)
	}
	return statuscode.GenericCode{}
}

func (d gauge) Message(c statuscode.Erased) strref.Ref {
	statuscode.CheckOwner(d, c)
	if v := c.Value(); v < uint64(len(gaugeMessages)) {
		return strref.Literal(gaugeMessages[v])
	}
	return strref.Literal("unknown")
}
