// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"io"
	"net/http"
	"net/url"
)

// ToServer is the sink an Encoder writes the encoded request body to.
type ToServer interface {
	// ToServer supplies the wire-ready request body.  The content type and
	// charset of the body are the ones resolved from the Config.
	ToServer(body io.Reader) error
}

// ToServerFunc is a closure type that implements ToServer.
type ToServerFunc func(io.Reader) error

func (tsf ToServerFunc) ToServer(body io.Reader) error {
	return tsf(body)
}

// FromServer is the view of an HTTP response that parsers and handlers consume.
type FromServer interface {
	// StatusCode is the numeric HTTP status code.
	StatusCode() int

	// Message is the status text, e.g. "Not Found".
	Message() string

	// Header returns the response headers.
	Header() http.Header

	// ContentType is the media type of the body, lowercased and without parameters.
	ContentType() string

	// Charset is the charset parameter of the Content-Type, which may be blank.
	Charset() string

	// HasBody reports whether the response carries a body that should be parsed.
	HasBody() bool

	// Body is the body stream.
	Body() io.Reader

	// URI is the address the request was sent to.
	URI() *url.URL
}

// Encoder converts the request body resolved from a Config into wire-ready
// bytes for the request's content type.
type Encoder func(cfg *Config, ts ToServer) error

// Parser converts a response body into a caller-facing value.
type Parser func(cfg *Config, fs FromServer) (any, error)

// Handler processes a dispatched response.  The body argument is the
// result of the Parser selected for the response, or nil when the
// response had no body.  The return value becomes the result of the execution.
type Handler func(fs FromServer, body any) (any, error)

// ContextKey is the composite key of the auxiliary configuration that
// encoders and parsers consult.  ID must be a comparable value, and typically
// is a constant exported by the package that owns the encoder or parser.
type ContextKey struct {
	ContentType string
	ID          any
}

// ContextValue is a typed lookup of context configuration.  The second return
// is false if no value exists for the key or if the value is not a T.
func ContextValue[T any](cfg *Config, contentType string, id any) (T, bool) {
	v, ok := cfg.Context(contentType, id)
	if ok {
		t, ok := v.(T)
		return t, ok
	}

	var zero T
	return zero, false
}
