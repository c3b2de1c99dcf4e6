// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// setting is an optionally set value.  Unset values fall through to a parent.
type setting[T any] struct {
	value T
	set   bool
}

func (s *setting[T]) put(v T) {
	s.value = v
	s.set = true
}

// URIBuilder allows a request URI to be built incrementally.  A URIBuilder
// derived from a parent only stores the components set locally.  Every other
// component is read through to the parent.
//
// Query parameters are layered per key: a parameter set locally replaces the
// parent's values for that key, while the parent's other parameters still apply.
// Setting a complete URI through SetURI detaches the query from the parent.
type URIBuilder struct {
	parent *URIBuilder

	scheme   setting[string]
	user     setting[*url.Userinfo]
	host     setting[string]
	port     setting[string]
	path     setting[string]
	fragment setting[string]

	query        url.Values
	replaceQuery bool
}

// NewURIBuilder parses a URI into a new, parentless builder.
func NewURIBuilder(uri string) (*URIBuilder, error) {
	ub := new(URIBuilder)
	if err := ub.SetURI(uri); err != nil {
		return nil, err
	}

	return ub, nil
}

// parseURI is the strict parsing used for every URI string supplied to this package.
func parseURI(uri string) (*url.URL, error) {
	u, err := url.Parse(uri)
	switch {
	case err != nil:
		return nil, &MalformedURIError{URI: uri, Err: err}

	case len(u.Opaque) > 0:
		// e.g. "http:example.com", which cannot address an HTTP resource
		return nil, &MalformedURIError{URI: uri}

	case u.IsAbs() && len(u.Host) == 0:
		return nil, &MalformedURIError{URI: uri}

	case strings.ContainsAny(uri, " \t\r\n"):
		return nil, &MalformedURIError{URI: uri}
	}

	return u, nil
}

// SetURI replaces this builder's URI.  An absolute URI replaces every component.
// A relative URI is resolved against the parent's URI when that is absolute.
// A string that cannot be parsed yields a *MalformedURIError and leaves
// this builder untouched.
func (ub *URIBuilder) SetURI(uri string) error {
	u, err := parseURI(uri)
	if err == nil {
		ub.SetURL(u)
	}

	return err
}

// SetURL is like SetURI, but starts with an already parsed URL.  The URL
// is not retained.  A nil URL leaves this builder untouched.
func (ub *URIBuilder) SetURL(u *url.URL) *URIBuilder {
	if u == nil {
		return ub
	}

	if !u.IsAbs() && ub.parent != nil {
		if base := ub.parent.URL(); base.IsAbs() {
			u = base.ResolveReference(u)
		}
	}

	ub.scheme.put(u.Scheme)
	if u.User != nil {
		copied := *u.User
		ub.user.put(&copied)
	} else {
		ub.user.put(nil)
	}

	ub.host.put(u.Hostname())
	ub.port.put(u.Port())
	ub.path.put(u.Path)
	ub.fragment.put(u.Fragment)
	ub.query = u.Query()
	ub.replaceQuery = true
	return ub
}

// SetScheme sets the URI scheme, e.g. https.
func (ub *URIBuilder) SetScheme(v string) *URIBuilder {
	ub.scheme.put(strings.ToLower(v))
	return ub
}

// SetUser sets the user information embedded in the URI.  A nil value
// explicitly clears it.
func (ub *URIBuilder) SetUser(v *url.Userinfo) *URIBuilder {
	ub.user.put(v)
	return ub
}

// SetHost sets the host name or IP address, without a port.
func (ub *URIBuilder) SetHost(v string) *URIBuilder {
	ub.host.put(strings.Trim(v, "[]"))
	return ub
}

// SetPort sets the port.  A nonpositive port clears it, which means
// the scheme's default port.
func (ub *URIBuilder) SetPort(v int) *URIBuilder {
	if v > 0 {
		ub.port.put(strconv.Itoa(v))
	} else {
		ub.port.put("")
	}

	return ub
}

// SetPath replaces the path.
func (ub *URIBuilder) SetPath(v string) *URIBuilder {
	ub.path.put(v)
	return ub
}

// AppendPath adds segments to the effective path, inserting exactly one
// slash between each segment.
func (ub *URIBuilder) AppendPath(segments ...string) *URIBuilder {
	var o strings.Builder
	o.WriteString(strings.TrimRight(ub.Path(), "/"))
	for _, s := range segments {
		if s = strings.Trim(s, "/"); len(s) > 0 {
			o.WriteRune('/')
			o.WriteString(s)
		}
	}

	ub.path.put(o.String())
	return ub
}

// SetFragment sets the fragment, without the leading '#'.
func (ub *URIBuilder) SetFragment(v string) *URIBuilder {
	ub.fragment.put(v)
	return ub
}

// SetQuery replaces the entire query, including any parameters the parent defines.
func (ub *URIBuilder) SetQuery(v url.Values) *URIBuilder {
	ub.query = cloneValues(v)
	ub.replaceQuery = true
	return ub
}

// SetQueryParam sets the values of a single query parameter, replacing any
// existing values for that key in this builder or its parent.
func (ub *URIBuilder) SetQueryParam(key string, values ...string) *URIBuilder {
	if ub.query == nil {
		ub.query = make(url.Values)
	}

	ub.query[key] = append([]string(nil), values...)
	return ub
}

// AddQueryParam appends a value to a query parameter.  The effective values
// of that parameter, including any inherited ones, are retained.
func (ub *URIBuilder) AddQueryParam(key, value string) *URIBuilder {
	if ub.query == nil {
		ub.query = make(url.Values)
	}

	if _, local := ub.query[key]; !local && !ub.replaceQuery && ub.parent != nil {
		ub.query[key] = append([]string(nil), ub.parent.Query()[key]...)
	}

	ub.query[key] = append(ub.query[key], value)
	return ub
}

// SetQueryStruct encodes a struct with github.com/google/go-querystring and sets
// each resulting parameter as with SetQueryParam.  Fields use the "url" struct tag.
func (ub *URIBuilder) SetQueryStruct(v any) error {
	values, err := query.Values(v)
	if err != nil {
		return err
	}

	for key, vs := range values {
		ub.SetQueryParam(key, vs...)
	}

	return nil
}

// Scheme returns the effective scheme.
func (ub *URIBuilder) Scheme() string {
	return resolveURI(ub, func(b *URIBuilder) *setting[string] { return &b.scheme })
}

// User returns the effective user information, which may be nil.
func (ub *URIBuilder) User() *url.Userinfo {
	return resolveURI(ub, func(b *URIBuilder) *setting[*url.Userinfo] { return &b.user })
}

// Host returns the effective host, without a port.
func (ub *URIBuilder) Host() string {
	return resolveURI(ub, func(b *URIBuilder) *setting[string] { return &b.host })
}

// Port returns the effective port, which is blank when the scheme's default applies.
func (ub *URIBuilder) Port() string {
	return resolveURI(ub, func(b *URIBuilder) *setting[string] { return &b.port })
}

// Path returns the effective path.
func (ub *URIBuilder) Path() string {
	return resolveURI(ub, func(b *URIBuilder) *setting[string] { return &b.path })
}

// Fragment returns the effective fragment.
func (ub *URIBuilder) Fragment() string {
	return resolveURI(ub, func(b *URIBuilder) *setting[string] { return &b.fragment })
}

// Query returns a copy of the effective query parameters.
func (ub *URIBuilder) Query() url.Values {
	var merged url.Values
	if ub.parent != nil && !ub.replaceQuery {
		merged = ub.parent.Query()
	} else {
		merged = make(url.Values, len(ub.query))
	}

	for key, values := range ub.query {
		merged[key] = append([]string(nil), values...)
	}

	return merged
}

// URL assembles the effective URI.  The returned URL is always a distinct instance.
func (ub *URIBuilder) URL() *url.URL {
	u := &url.URL{
		Scheme:   ub.Scheme(),
		User:     ub.User(),
		Path:     ub.Path(),
		Fragment: ub.Fragment(),
	}

	host := ub.Host()
	if strings.IndexByte(host, ':') >= 0 {
		host = "[" + host + "]"
	}

	if port := ub.Port(); len(port) > 0 {
		u.Host = net.JoinHostPort(strings.Trim(host, "[]"), port)
	} else {
		u.Host = host
	}

	if q := ub.Query(); len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	return u
}

// String returns the effective URI as text.
func (ub *URIBuilder) String() string {
	return ub.URL().String()
}

// clone produces a deep copy.  The parent is shared, since parents are never mutated.
func (ub *URIBuilder) clone() *URIBuilder {
	clone := *ub
	if ub.user.value != nil {
		copied := *ub.user.value
		clone.user.value = &copied
	}

	clone.query = cloneValues(ub.query)
	return &clone
}

// child creates a builder that reads through to this one.
func (ub *URIBuilder) child() *URIBuilder {
	return &URIBuilder{parent: ub}
}

func resolveURI[T any](ub *URIBuilder, field func(*URIBuilder) *setting[T]) (zero T) {
	for b := ub; b != nil; b = b.parent {
		if s := field(b); s.set {
			return s.value
		}
	}

	return
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}

	clone := make(url.Values, len(v))
	for key, values := range v {
		clone[key] = append([]string(nil), values...)
	}

	return clone
}
