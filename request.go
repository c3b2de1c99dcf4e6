// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"net/url"
	"time"
)

// Cookie is a cookie sent with a request.
type Cookie struct {
	Name  string
	Value string

	// Expires is optional.  The zero value means the cookie never expires.
	Expires time.Time
}

// Expired tests whether this cookie has an expiry at or before the given time.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

// Request is the request half of a Builder.  Every setter mutates only this
// Request.  Anything not set here is inherited from the parent configuration,
// if there is one.
type Request struct {
	uri         *URIBuilder
	header      Header
	accept      setting[[]string]
	contentType setting[string]
	charset     setting[string]
	body        setting[any]
	cookies     []Cookie
	auth        Auth

	encoders       map[string]Encoder
	defaultEncoder Encoder
}

func newRequest(parent *Request) *Request {
	r := new(Request)
	if parent != nil {
		r.uri = parent.uri.child()
	} else {
		r.uri = new(URIBuilder)
	}

	return r
}

// Auth returns the authentication settings of this Request, for in-place modification.
func (r *Request) Auth() *Auth {
	return &r.auth
}

// URI returns the builder for fine-grained changes to the request URI.
func (r *Request) URI() *URIBuilder {
	return r.uri
}

// SetURI replaces the request URI.  See URIBuilder.SetURI.
func (r *Request) SetURI(uri string) error {
	return r.uri.SetURI(uri)
}

// SetURL replaces the request URI with an already parsed URL.
func (r *Request) SetURL(u *url.URL) error {
	if u == nil {
		return ErrNilURL
	}

	if _, err := parseURI(u.String()); err != nil {
		return err
	}

	r.uri.SetURL(u)
	return nil
}

// SetHeader sets a single header.  Keys are case insensitive.
func (r *Request) SetHeader(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// SetHeaders adds each of the given headers, replacing any existing value
// for the same key.
func (r *Request) SetHeaders(toAdd map[string]string) *Request {
	NewHeaderFromMap(toAdd).Each(r.header.Set)
	return r
}

// Headers returns a copy of the headers set on this Request alone.
func (r *Request) Headers() Header {
	return r.header.Clone()
}

// SetAccept sets the media types sent in the Accept header, replacing any
// inherited list.
func (r *Request) SetAccept(values ...string) *Request {
	r.accept.put(append([]string(nil), values...))
	return r
}

// SetContentType sets the content type of the request body, which also selects the Encoder.
func (r *Request) SetContentType(v string) *Request {
	r.contentType.put(v)
	return r
}

// SetCharset sets the charset of the request body.  Unknown charsets are rejected
// with an *InvalidCharsetError.
func (r *Request) SetCharset(v string) error {
	canonical, err := canonicalCharset(v)
	if err == nil {
		r.charset.put(canonical)
	}

	return err
}

// SetBody sets the request body.  The body is passed to the Encoder for the
// request content type.
func (r *Request) SetBody(v any) *Request {
	r.body.put(v)
	return r
}

// Cookie appends a cookie with no expiry.  Cookies are never deduplicated:
// a second cookie with the same name is sent alongside the first.
func (r *Request) Cookie(name, value string) *Request {
	return r.CookieExpires(name, value, time.Time{})
}

// CookieExpires appends a cookie that is no longer sent after the given time.
func (r *Request) CookieExpires(name, value string, expires time.Time) *Request {
	r.cookies = append(r.cookies, Cookie{Name: name, Value: value, Expires: expires})
	return r
}

// Encoder registers an Encoder for a content type, replacing any Encoder for
// that exact content type on this Request.
func (r *Request) Encoder(contentType string, e Encoder) *Request {
	if r.encoders == nil {
		r.encoders = make(map[string]Encoder)
	}

	r.encoders[contentType] = e
	return r
}

// EncoderAll registers the same Encoder under each content type.  This is
// exactly equivalent to calling Encoder once per content type.
func (r *Request) EncoderAll(contentTypes []string, e Encoder) *Request {
	for _, ct := range contentTypes {
		r.Encoder(ct, e)
	}

	return r
}

// EncoderFor returns the Encoder registered on this Request for an exact content type.
// Inherited encoders are not consulted; use Config.Encoder for that.
func (r *Request) EncoderFor(contentType string) (e Encoder, ok bool) {
	e, ok = r.encoders[contentType]
	return
}

// DefaultEncoder sets the Encoder used when no content type specific Encoder exists.
func (r *Request) DefaultEncoder(e Encoder) *Request {
	r.defaultEncoder = e
	return r
}

// clone produces a deep copy of every mutable field.  The body is an opaque
// value and is shared.
func (r *Request) clone() *Request {
	clone := &Request{
		uri:            r.uri.clone(),
		header:         r.header.Clone(),
		accept:         r.accept,
		contentType:    r.contentType,
		charset:        r.charset,
		body:           r.body,
		cookies:        append([]Cookie(nil), r.cookies...),
		auth:           r.auth,
		defaultEncoder: r.defaultEncoder,
	}

	clone.accept.value = append([]string(nil), r.accept.value...)
	clone.encoders = cloneMap(r.encoders)
	return clone
}
