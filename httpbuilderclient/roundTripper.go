// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import "net/http"

// RoundTripperConstructor decorates the transport of a Client, e.g. to add
// logging or to answer authentication challenges.
type RoundTripperConstructor func(http.RoundTripper) http.RoundTripper

// RoundTripperChain is an immutable, ordered list of RoundTripperConstructors.
// The zero value decorates nothing.
type RoundTripperChain struct {
	ctors []RoundTripperConstructor
}

// NewRoundTripperChain copies ctors into a new chain.
func NewRoundTripperChain(ctors ...RoundTripperConstructor) RoundTripperChain {
	return RoundTripperChain{
		ctors: append([]RoundTripperConstructor(nil), ctors...),
	}
}

// Append returns a chain with more added after this chain's constructors.
// The receiver is unchanged.
func (rtc RoundTripperChain) Append(more ...RoundTripperConstructor) RoundTripperChain {
	if len(more) == 0 {
		return rtc
	}

	ctors := make([]RoundTripperConstructor, 0, len(rtc.ctors)+len(more))
	ctors = append(ctors, rtc.ctors...)
	return RoundTripperChain{
		ctors: append(ctors, more...),
	}
}

// Len is the number of constructors in this chain.
func (rtc RoundTripperChain) Len() int {
	return len(rtc.ctors)
}

// Then wraps next so that the first constructor is the outermost and sees
// each request first.  A nil next means http.DefaultTransport.
func (rtc RoundTripperChain) Then(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	for i := len(rtc.ctors) - 1; i >= 0; i-- {
		next = rtc.ctors[i](next)
	}

	return next
}
