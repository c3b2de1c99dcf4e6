// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

// TransportConfig holds the unmarshaled configuration of an *http.Transport.
type TransportConfig struct {
	TLSHandshakeTimeout    time.Duration
	DisableKeepAlives      bool
	DisableCompression     bool
	MaxIdleConns           int
	MaxIdleConnsPerHost    int
	MaxConnsPerHost        int
	IdleConnTimeout        time.Duration
	ResponseHeaderTimeout  time.Duration
	ExpectContinueTimeout  time.Duration
	ProxyConnectHeader     http.Header
	MaxResponseHeaderBytes int64
	WriteBufferSize        int
	ReadBufferSize         int
	ForceAttemptHTTP2      bool
}

// NewTransport creates an *http.Transport from this configuration.  The
// proxy is taken from the environment, as with http.DefaultTransport.
func (tc TransportConfig) NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		TLSHandshakeTimeout:    tc.TLSHandshakeTimeout,
		DisableKeepAlives:      tc.DisableKeepAlives,
		DisableCompression:     tc.DisableCompression,
		MaxIdleConns:           tc.MaxIdleConns,
		MaxIdleConnsPerHost:    tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:        tc.MaxConnsPerHost,
		IdleConnTimeout:        tc.IdleConnTimeout,
		ResponseHeaderTimeout:  tc.ResponseHeaderTimeout,
		ExpectContinueTimeout:  tc.ExpectContinueTimeout,
		ProxyConnectHeader:     tc.ProxyConnectHeader,
		MaxResponseHeaderBytes: tc.MaxResponseHeaderBytes,
		WriteBufferSize:        tc.WriteBufferSize,
		ReadBufferSize:         tc.ReadBufferSize,
		ForceAttemptHTTP2:      tc.ForceAttemptHTTP2,
	}
}

// ClientConfig holds the unmarshaled configuration of an *http.Client.
type ClientConfig struct {
	// Timeout is the overall time limit of each request, including the body read.
	Timeout time.Duration

	// CookieJar enables a public suffix aware jar that stores the cookies servers set.
	// Cookies configured through httpbuilder are sent regardless of this setting.
	CookieJar bool

	Transport TransportConfig
}

// NewClient creates an *http.Client from this configuration, then applies
// any options to it.
func (cc ClientConfig) NewClient(opts ...Option[http.Client]) (*http.Client, error) {
	client := &http.Client{
		Timeout:   cc.Timeout,
		Transport: cc.Transport.NewTransport(),
	}

	if cc.CookieJar {
		jar, err := cookiejar.New(&cookiejar.Options{
			PublicSuffixList: publicsuffix.List,
		})

		if err != nil {
			return nil, err
		}

		client.Jar = jar
	}

	if err := Options[http.Client](opts).Apply(client); err != nil {
		return nil, err
	}

	return client, nil
}
