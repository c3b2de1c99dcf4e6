// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"errors"
	"net/url"
	"reflect"

	"go.uber.org/multierr"
)

// ErrInvalidContextID is returned when a context ID cannot be used as a map key.
var ErrInvalidContextID = errors.New("context IDs must be non-nil, comparable values")

// Builder is the mutable form of a configuration.  A Builder is not safe for
// concurrent use.  Build produces the immutable Config that can be shared.
//
// A root Builder comes from New.  A derived Builder comes from Config.Derive,
// and every lookup for a setting it does not define falls through to its parent.
type Builder struct {
	parent   *Config
	request  *Request
	response *Response
	context  map[ContextKey]any
}

// New creates an empty root Builder.
func New() *Builder {
	return &Builder{
		request:  newRequest(nil),
		response: new(Response),
	}
}

// Parent returns the Config this Builder was derived from, which is nil for a root.
func (b *Builder) Parent() *Config {
	return b.parent
}

// Request returns the request settings of this Builder.
func (b *Builder) Request() *Request {
	return b.request
}

// Response returns the response settings of this Builder.
func (b *Builder) Response() *Response {
	return b.response
}

// Context stores auxiliary configuration for the encoders and parsers of a content
// type.  The id must be comparable, as it is part of a map key.
func (b *Builder) Context(contentType string, id, obj any) error {
	if id == nil || !reflect.TypeOf(id).Comparable() {
		return ErrInvalidContextID
	}

	if b.context == nil {
		b.context = make(map[ContextKey]any)
	}

	b.context[ContextKey{ContentType: contentType, ID: id}] = obj
	return nil
}

// ContextAll stores the same auxiliary configuration under each content type.
func (b *Builder) ContextAll(contentTypes []string, id, obj any) error {
	for _, ct := range contentTypes {
		if err := b.Context(ct, id, obj); err != nil {
			return err
		}
	}

	return nil
}

// Apply runs each option against this Builder.  Every option is applied even
// if an earlier one fails.  The returned error aggregates all failures and can be
// inspected with go.uber.org/multierr.
func (b *Builder) Apply(opts ...Option) error {
	return Options(opts).Apply(b)
}

// Build produces an immutable snapshot of this Builder.  Subsequent changes to the
// Builder do not affect the returned Config.
func (b *Builder) Build() *Config {
	return &Config{
		parent:   b.parent,
		request:  b.request.clone(),
		response: b.response.clone(),
		context:  cloneMap(b.context),
	}
}

// Option is a configuration step applied to a Builder.
type Option func(*Builder) error

// Options is an aggregate Option.
type Options []Option

// Apply invokes each option in order.  Options are always invoked, even when
// one or more errors occur.
func (o Options) Apply(b *Builder) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt(b))
	}

	return
}

// Config is an immutable configuration.  A Config may be shared by any number
// of goroutines.  Per-use changes are made on a Builder obtained from Derive.
//
// Every accessor resolves through the chain of parents: the nearest Config that
// defines a setting wins.
type Config struct {
	parent   *Config
	request  *Request
	response *Response
	context  map[ContextKey]any
}

// Derive creates a mutable Builder layered over this Config.  Nothing done to the
// returned Builder affects this Config.
func (c *Config) Derive() *Builder {
	return &Builder{
		parent:   c,
		request:  newRequest(c.request),
		response: new(Response),
	}
}

// Parent returns the Config this one was derived from, which is nil for a root.
func (c *Config) Parent() *Config {
	return c.parent
}

// traverse visits the chain from this Config up to the root, returning the
// first value found.
func traverse[T any](c *Config, f func(*Config) (T, bool)) (T, bool) {
	for ; c != nil; c = c.parent {
		if v, ok := f(c); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// URL returns the effective request URI.
func (c *Config) URL() *url.URL {
	return c.request.uri.URL()
}

// Header returns the effective request headers: each Config's headers overlaid
// on its parent's.
func (c *Config) Header() Header {
	if c.parent == nil {
		return c.request.header.Clone()
	}

	return c.parent.Header().Merge(c.request.header)
}

// Accept returns the effective list of accepted media types.
func (c *Config) Accept() []string {
	v, _ := traverse(c, func(c *Config) ([]string, bool) {
		return c.request.accept.value, c.request.accept.set
	})

	return append([]string(nil), v...)
}

// ContentType returns the effective request content type.
func (c *Config) ContentType() string {
	v, _ := traverse(c, func(c *Config) (string, bool) {
		return c.request.contentType.value, c.request.contentType.set
	})

	return v
}

// Charset returns the effective canonical charset name, or the blank string
// if none was set.
func (c *Config) Charset() string {
	v, _ := traverse(c, func(c *Config) (string, bool) {
		return c.request.charset.value, c.request.charset.set
	})

	return v
}

// Body returns the effective request body.
func (c *Config) Body() any {
	v, _ := traverse(c, func(c *Config) (any, bool) {
		return c.request.body.value, c.request.body.set
	})

	return v
}

// Cookies returns every cookie in the chain, the root's first.
func (c *Config) Cookies() []Cookie {
	if c.parent == nil {
		return append([]Cookie(nil), c.request.cookies...)
	}

	return append(c.parent.Cookies(), c.request.cookies...)
}

// Auth returns the nearest Auth that has been set.  If no Config in the chain
// sets one, the zero Auth is returned.
func (c *Config) Auth() Auth {
	v, _ := traverse(c, func(c *Config) (Auth, bool) {
		return c.request.auth, c.request.auth.IsSet()
	})

	return v
}

// Encoder resolves the Encoder for a content type: an exact registration anywhere
// in the chain first, then the nearest default Encoder.
func (c *Config) Encoder(contentType string) (Encoder, bool) {
	if e, ok := traverse(c, func(c *Config) (Encoder, bool) {
		return c.request.EncoderFor(contentType)
	}); ok {
		return e, true
	}

	return traverse(c, func(c *Config) (Encoder, bool) {
		return c.request.defaultEncoder, c.request.defaultEncoder != nil
	})
}

// Parser resolves the Parser for a content type in the same way as Encoder.
func (c *Config) Parser(contentType string) (Parser, bool) {
	if p, ok := traverse(c, func(c *Config) (Parser, bool) {
		return c.response.ParserFor(contentType)
	}); ok {
		return p, true
	}

	return traverse(c, func(c *Config) (Parser, bool) {
		return c.response.defaultParser, c.response.defaultParser != nil
	})
}

// Context returns the auxiliary configuration for a content type and id.
func (c *Config) Context(contentType string, id any) (any, bool) {
	if id == nil || !reflect.TypeOf(id).Comparable() {
		return nil, false
	}

	key := ContextKey{ContentType: contentType, ID: id}
	return traverse(c, func(c *Config) (v any, ok bool) {
		v, ok = c.context[key]
		return
	})
}
