// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildertest

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xmidt-org/httpbuilder"
)

// Response creates a canned *http.Response, as a transport would return it for
// a GET of http://example.com/.  A blank body produces http.NoBody.
func Response(code int, contentType, body string) *http.Response {
	return ResponseBytes(code, contentType, []byte(body))
}

// ResponseBytes is like Response, but takes a binary body.
func ResponseBytes(code int, contentType string, body []byte) *http.Response {
	response := &http.Response{
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{},
		ContentLength: int64(len(body)),
		Body:          http.NoBody,
		Request: &http.Request{
			Method: http.MethodGet,
			URL:    &url.URL{Scheme: "http", Host: "example.com", Path: "/"},
		},
	}

	if len(contentType) > 0 {
		response.Header.Set("Content-Type", contentType)
	}

	if len(body) > 0 {
		response.Body = io.NopCloser(bytes.NewReader(body))
	}

	return response
}

// FromServer wraps a canned Response.
func FromServer(code int, contentType, body string) httpbuilder.FromServer {
	return httpbuilder.NewFromServer(Response(code, contentType, body))
}

// ToServer is an httpbuilder.ToServer that captures everything an Encoder sends.
type ToServer struct {
	// Body is the concatenation of every body sent.
	Body []byte

	// Calls is the number of times ToServer was invoked.
	Calls int
}

func (ts *ToServer) ToServer(body io.Reader) error {
	ts.Calls++
	data, err := io.ReadAll(body)
	ts.Body = append(ts.Body, data...)
	return err
}

// String returns the captured body as a string.
func (ts *ToServer) String() string {
	return string(ts.Body)
}
