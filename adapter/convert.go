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

// Package adapter converts status codes into the flat apis view types.
package adapter

import (
	"strconv"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/apis"
)

// ToDescriptor converts c together with its resolved transport status into a
// portable ErrorDescriptor. An empty code yields the zero descriptor.
func ToDescriptor(c statuscode.Code, st apis.Status) apis.ErrorDescriptor {
	v := ToView(c)
	if v.Domain == "" {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Domain:     v.Domain,
		DomainID:   v.DomainID,
		Value:      v.Value,
		Generic:    v.Generic,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
}

// ToView converts c into a public ErrorView. No redaction is performed: the
// view holds the domain's own message for the code.
func ToView(c statuscode.Code) apis.ErrorView {
	if c == nil || c.Empty() {
		return apis.ErrorView{}
	}
	e := c.Erase()
	name := e.Domain().Name()
	defer name.Release()

	v := apis.ErrorView{
		Domain:   name.String(),
		DomainID: e.Domain().ID().String(),
		Value:    strconv.FormatUint(e.Value(), 10),
		Message:  e.Message(),
		Failure:  e.Failure(),
	}
	if g := e.GenericCode(); !g.Empty() {
		v.Generic = g.Value().String()
	}
	return v
}
