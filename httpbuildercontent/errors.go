// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildercontent

import (
	"errors"
	"reflect"
	"strings"
)

// ErrInvalidJSON is returned by ParseJSON in lazy mode when the body is not valid JSON.
var ErrInvalidJSON = errors.New("the response body is not valid JSON")

// UnsupportedBodyError indicates a request body that an encoder cannot write.
type UnsupportedBodyError struct {
	ContentType string
	Type        reflect.Type
}

func (ube *UnsupportedBodyError) Error() string {
	var o strings.Builder
	o.WriteString("cannot encode a body of type ")
	if ube.Type != nil {
		o.WriteString(ube.Type.String())
	} else {
		o.WriteString("<nil>")
	}

	if len(ube.ContentType) > 0 {
		o.WriteString(" as ")
		o.WriteString(ube.ContentType)
	}

	return o.String()
}
