// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"io"
	"net/http"
	"strings"

	"github.com/xmidt-org/httpaux/roundtrip"
	"github.com/xmidt-org/httpbuilder"
	"go.uber.org/zap"
)

// challenged tests whether a response is a 401 carrying a challenge for the given scheme.
func challenged(response *http.Response, scheme string) bool {
	if response.StatusCode != http.StatusUnauthorized {
		return false
	}

	for _, v := range response.Header.Values("WWW-Authenticate") {
		if len(v) >= len(scheme) && strings.EqualFold(v[:len(scheme)], scheme) {
			return true
		}
	}

	return false
}

// rewind clones a request so that it can be sent again.  The second return is
// false if the request has a body that cannot be replayed.
func rewind(request *http.Request) (*http.Request, bool) {
	retry := request.Clone(request.Context())
	if request.Body != nil && request.Body != http.NoBody {
		if request.GetBody == nil {
			return nil, false
		}

		body, err := request.GetBody()
		if err != nil {
			return nil, false
		}

		retry.Body = body
	}

	return retry, true
}

// discard drains and closes a response body, so the connection can be reused.
func discard(response *http.Response) {
	io.Copy(io.Discard, response.Body)
	response.Body.Close()
}

// authenticator creates the round tripper that carries out an Auth.  A nil
// constructor is returned when no authentication is needed.
func authenticator(auth httpbuilder.Auth, nonces *digestNonces, logger *zap.Logger) RoundTripperConstructor {
	switch auth.Type() {
	case httpbuilder.AuthBasic:
		return basicAuth(auth, logger)

	case httpbuilder.AuthDigest:
		return digestAuth(auth, nonces, logger)

	default:
		return nil
	}
}

func basicAuth(auth httpbuilder.Auth, logger *zap.Logger) RoundTripperConstructor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			if auth.Preemptive() {
				authorized := request.Clone(request.Context())
				authorized.SetBasicAuth(auth.User(), auth.Password())
				return next.RoundTrip(authorized)
			}

			response, err := next.RoundTrip(request)
			if err != nil || !challenged(response, "Basic") {
				return response, err
			}

			retry, ok := rewind(request)
			if !ok {
				return response, nil
			}

			discard(response)
			logger.Debug("answering authentication challenge", zap.String("scheme", "basic"))
			retry.SetBasicAuth(auth.User(), auth.Password())
			return next.RoundTrip(retry)
		})
	}
}

func digestAuth(auth httpbuilder.Auth, nonces *digestNonces, logger *zap.Logger) RoundTripperConstructor {
	// answer responds to the digest challenge in response by resending request
	answer := func(next http.RoundTripper, request *http.Request, response *http.Response) (*http.Response, error) {
		dc, ok := parseDigestChallenge(response.Header)
		if !ok {
			return response, nil
		}

		retry, ok := rewind(request)
		if !ok {
			return response, nil
		}

		discard(response)
		nonces.store(request.URL.Host, *dc)
		_, nc, _ := nonces.next(request.URL.Host)

		value, err := dc.authorization(retry, auth.User(), auth.Password(), nc, newCnonce())
		if err != nil {
			return nil, err
		}

		logger.Debug("answering authentication challenge", zap.String("scheme", "digest"), zap.String("realm", dc.realm))
		retry.Header.Set("Authorization", value)
		return next.RoundTrip(retry)
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			sent := request
			if auth.Preemptive() {
				if dc, nc, ok := nonces.next(request.URL.Host); ok {
					value, err := dc.authorization(request, auth.User(), auth.Password(), nc, newCnonce())
					if err != nil {
						return nil, err
					}

					sent = request.Clone(request.Context())
					sent.Header.Set("Authorization", value)
				}
			}

			response, err := next.RoundTrip(sent)
			if err != nil || !challenged(response, "Digest") {
				return response, err
			}

			return answer(next, request, response)
		})
	}
}
