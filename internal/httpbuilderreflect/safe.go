// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderreflect

import (
	"reflect"
)

// Safe returns candidate if it is a valid, non-nil value.  Otherwise, def is returned.
// Types that cannot be nil, such as ints and structs, always yield candidate.
//
// Optional collaborators are the usual use:
//
//	var rt http.RoundTripper = (*http.Transport)(nil)
//	rt = httpbuilderreflect.Safe[http.RoundTripper](rt, http.DefaultTransport)
func Safe[T any](candidate, def T) (result T) {
	result = def
	defer func() {
		// IsNil panics for kinds that cannot be nil
		if r := recover(); r != nil {
			result = candidate
		}
	}()

	if cv := reflect.ValueOf(candidate); cv.IsValid() && !cv.IsNil() {
		result = candidate
	}

	return
}
