// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildertest

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// RequestMatcher accumulates predicates for an *http.Request.  Use it with
// mock.MatchedBy, or with MockRoundTripper.ExpectMatch, to match requests by state.
type RequestMatcher struct {
	predicates []func(*http.Request) bool
}

// Match adds a predicate to this matcher.
func (rm *RequestMatcher) Match(p func(*http.Request) bool) *RequestMatcher {
	rm.predicates = append(rm.predicates, p)
	return rm
}

// Method matches the request method.
func (rm *RequestMatcher) Method(v string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		return request.Method == v
	})
}

// URL matches the full request URL.
func (rm *RequestMatcher) URL(v string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		return request.URL != nil && request.URL.String() == v
	})
}

// Header matches when expected is one of the values of a request header.
func (rm *RequestMatcher) Header(key, expected string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		for _, v := range request.Header.Values(key) {
			if v == expected {
				return true
			}
		}

		return false
	})
}

// NoHeader matches when the request does not carry the given header.
func (rm *RequestMatcher) NoHeader(key string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		return len(request.Header.Values(key)) == 0
	})
}

// Cookie matches a request cookie by name and value.
func (rm *RequestMatcher) Cookie(name, expected string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		c, err := request.Cookie(name)
		return err == nil && c.Value == expected
	})
}

// Body matches the entire request body.  The body is restored after it is read,
// so later predicates and the code under test can read it again.
func (rm *RequestMatcher) Body(expected string) *RequestMatcher {
	return rm.Match(func(request *http.Request) bool {
		if request.Body == nil {
			return len(expected) == 0
		}

		data, err := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(data))
		return err == nil && string(data) == expected
	})
}

// Matches may be passed to mock.MatchedBy.  It returns true only if every predicate does.
func (rm RequestMatcher) Matches(candidate *http.Request) (matched bool) {
	matched = true
	for i := 0; matched && i < len(rm.predicates); i++ {
		matched = rm.predicates[i](candidate)
	}

	return
}

// RoundTripCall is a mocked Call with clearer return declarations.
type RoundTripCall struct {
	*mock.Call
}

// Response makes the call return r and no error.
func (rtc RoundTripCall) Response(r *http.Response) *mock.Call {
	return rtc.Call.Return(r, error(nil))
}

// Error makes the call return err and a nil *http.Response.
func (rtc RoundTripCall) Error(err error) *mock.Call {
	return rtc.Call.Return((*http.Response)(nil), err)
}

// MockRoundTripper is a mocked http.RoundTripper.
type MockRoundTripper struct {
	mock.Mock
}

// RoundTrip executes the appropriate mocked call.  A returned response that
// has no Request is associated with the request that produced it.
func (m *MockRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	args := m.Called(request)
	response, _ := args.Get(0).(*http.Response)
	if response != nil && response.Request == nil {
		response.Request = request
	}

	return response, args.Error(1)
}

// Expect sets an expectation for exactly the given request.
func (m *MockRoundTripper) Expect(request *http.Request) RoundTripCall {
	return RoundTripCall{
		Call: m.On("RoundTrip", request),
	}
}

// ExpectMatch sets an expectation for any request that satisfies the matcher.
func (m *MockRoundTripper) ExpectMatch(matcher *RequestMatcher) RoundTripCall {
	return RoundTripCall{
		Call: m.On("RoundTrip", mock.MatchedBy(matcher.Matches)),
	}
}
