// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/httpaux/roundtrip"
	"github.com/xmidt-org/httpbuilder/httpbuildertest"
)

// recordingConstructors creates constructors that note their index, in call order.
func recordingConstructors(calls *[]int, offset, length int) (ctors []RoundTripperConstructor) {
	for i := 0; i < length; i++ {
		i := i + offset
		ctors = append(ctors, func(next http.RoundTripper) http.RoundTripper {
			return roundtrip.Func(func(r *http.Request) (*http.Response, error) {
				*calls = append(*calls, i)
				return next.RoundTrip(r)
			})
		})
	}

	return
}

func sequence(length int) (s []int) {
	for i := 0; i < length; i++ {
		s = append(s, i)
	}

	return
}

func TestRoundTripperChainThen(t *testing.T) {
	for _, length := range []int{0, 1, 2, 5} {
		t.Run(fmt.Sprintf("len=%d", length), func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)

				calls     []int
				transport = new(httpbuildertest.MockRoundTripper)
				request   = httptest.NewRequest("GET", "http://example.com/", nil)
			)

			transport.Expect(request).Response(httpbuildertest.Response(299, "", "")).Once()

			chain := NewRoundTripperChain(recordingConstructors(&calls, 0, length)...)
			response, err := chain.Then(transport).RoundTrip(request)
			require.NoError(err)
			assert.Equal(299, response.StatusCode)
			assert.Equal(sequence(length), calls)
			transport.AssertExpectations(t)
		})
	}
}

func TestRoundTripperChainNilNext(t *testing.T) {
	assert.Same(t, http.DefaultTransport, RoundTripperChain{}.Then(nil))
	assert.NotNil(t, NewRoundTripperChain(func(next http.RoundTripper) http.RoundTripper {
		assert.Same(t, http.DefaultTransport, next)
		return next
	}).Then(nil))
}

func TestRoundTripperChainAppend(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		calls     []int
		transport = new(httpbuildertest.MockRoundTripper)
		request   = httptest.NewRequest("GET", "http://example.com/", nil)
	)

	transport.Expect(request).Response(httpbuildertest.Response(200, "", ""))

	original := NewRoundTripperChain(recordingConstructors(&calls, 0, 2)...)
	appended := original.Append(recordingConstructors(&calls, 2, 3)...)

	_, err := appended.Then(transport).RoundTrip(request)
	require.NoError(err)
	assert.Equal(sequence(5), calls)

	calls = nil
	_, err = original.Then(transport).RoundTrip(request)
	require.NoError(err)
	assert.Equal(sequence(2), calls, "the original chain must not be modified")
}
