// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMalformedURI is the sentinel matched by every *MalformedURIError.
	ErrMalformedURI = errors.New("malformed URI")

	// ErrUnsupportedContentType is the sentinel matched by every *UnsupportedContentTypeError.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMissingCredentials is returned when basic or digest authentication
	// is configured without a user.
	ErrMissingCredentials = errors.New("a user is required for basic or digest authentication")

	// ErrNilURL is returned by SetURL when passed a nil *url.URL.
	ErrNilURL = errors.New("the URL cannot be nil")
)

// MalformedURIError indicates that a string could not be parsed into a
// URI usable for an HTTP request.
type MalformedURIError struct {
	URI string
	Err error
}

// Error describes the URI and the parse failure, if any.
func (mue *MalformedURIError) Error() string {
	var o strings.Builder
	o.WriteString("malformed URI ")
	o.WriteString(strconv.Quote(mue.URI))
	if mue.Err != nil {
		o.WriteString(": ")
		o.WriteString(mue.Err.Error())
	}

	return o.String()
}

// Unwrap returns the underlying parse error.
func (mue *MalformedURIError) Unwrap() error {
	return mue.Err
}

// Is matches ErrMalformedURI.
func (mue *MalformedURIError) Is(target error) bool {
	return target == ErrMalformedURI
}

// Direction tells whether a content handler was sought for a request
// body or for a response body.
type Direction string

const (
	// Encoding is the request direction.
	Encoding Direction = "encode"

	// Parsing is the response direction.
	Parsing Direction = "parse"
)

// UnsupportedContentTypeError is returned when neither a content-type specific
// handler nor a default handler is available.
type UnsupportedContentTypeError struct {
	Direction   Direction
	ContentType string
}

func (ucte *UnsupportedContentTypeError) Error() string {
	var o strings.Builder
	o.WriteString("no ")
	if ucte.Direction == Encoding {
		o.WriteString("encoder")
	} else {
		o.WriteString("parser")
	}

	o.WriteString(" registered for content type ")
	o.WriteString(strconv.Quote(ucte.ContentType))
	return o.String()
}

// Is matches ErrUnsupportedContentType.
func (ucte *UnsupportedContentTypeError) Is(target error) bool {
	return target == ErrUnsupportedContentType
}

// InvalidCharsetError indicates a charset name that is not known.
type InvalidCharsetError struct {
	Charset string
	Err     error
}

func (ice *InvalidCharsetError) Error() string {
	return "invalid charset " + strconv.Quote(ice.Charset)
}

func (ice *InvalidCharsetError) Unwrap() error {
	return ice.Err
}

// UnknownNameError is returned when text cannot be decoded into one of
// this package's enumerations.
type UnknownNameError struct {
	Kind string
	Name string
}

func (une *UnknownNameError) Error() string {
	return "unknown " + une.Kind + " " + strconv.Quote(une.Name)
}

// StatusError is returned by the built-in failure handler, i.e. when a
// non-2xx response has no registered handler.
type StatusError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the reason phrase supplied by the server, or the standard
	// status text when the server supplied none.
	Message string

	// Body is the parsed response body, which can be nil.
	Body any
}

func (se *StatusError) Error() string {
	var o strings.Builder
	o.WriteString("unexpected response status ")
	o.WriteString(strconv.Itoa(se.StatusCode))
	if len(se.Message) > 0 {
		o.WriteString(" (")
		o.WriteString(se.Message)
		o.WriteRune(')')
	}

	return o.String()
}
