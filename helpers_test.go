// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// newResponse creates a canned response, as a transport would return it.
func newResponse(code int, contentType, body string) *http.Response {
	response := &http.Response{
		StatusCode:    code,
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		Header:        http.Header{},
		ContentLength: int64(len(body)),
		Body:          io.NopCloser(strings.NewReader(body)),
		Request: &http.Request{
			Method: http.MethodGet,
			URL:    &url.URL{Scheme: "http", Host: "example.com", Path: "/test"},
		},
	}

	if len(contentType) > 0 {
		response.Header.Set("Content-Type", contentType)
	}

	if len(body) == 0 {
		response.Body = http.NoBody
	}

	return response
}

// funcPointer returns the code pointer of a function, for identity checks.
func funcPointer(f any) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// taggedHandler returns a Handler that yields a fixed tag, so tests can tell
// which Handler was dispatched to.
func taggedHandler(tag string) Handler {
	return func(_ FromServer, body any) (any, error) {
		return tag, nil
	}
}

// stringParser reads the whole body as a string.
func stringParser(_ *Config, fs FromServer) (any, error) {
	b, err := io.ReadAll(fs.Body())
	return string(b), err
}
