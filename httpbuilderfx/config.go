// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderfx

import (
	"time"

	"github.com/xmidt-org/httpbuilder"
	"github.com/xmidt-org/httpbuilder/httpbuilderclient"
	"go.uber.org/multierr"
)

// AuthConfig is the unmarshaled form of httpbuilder.Auth.  The zero value
// configures no authentication.
type AuthConfig struct {
	Type       httpbuilder.AuthType
	User       string
	Password   string
	Preemptive bool
}

// ApplyTo configures an Auth.  AuthNone leaves the Auth untouched.
func (ac AuthConfig) ApplyTo(a *httpbuilder.Auth) error {
	switch ac.Type {
	case httpbuilder.AuthBasic:
		return a.Basic(ac.User, ac.Password, ac.Preemptive)

	case httpbuilder.AuthDigest:
		return a.Digest(ac.User, ac.Password, ac.Preemptive)

	default:
		return nil
	}
}

// CookieConfig is the unmarshaled form of httpbuilder.Cookie.  Expires
// is written in RFC 3339.
type CookieConfig struct {
	Name    string
	Value   string
	Expires time.Time
}

// RootConfig is the externally configurable part of a root httpbuilder configuration,
// plus the configuration of the *http.Client that sends requests.
type RootConfig struct {
	URI         string
	Headers     map[string]string
	Accept      []string
	ContentType string
	Charset     string
	Auth        AuthConfig
	Cookies     []CookieConfig
	Client      httpbuilderclient.ClientConfig
}

// Apply is an httpbuilder.Option that transfers this configuration to a Builder.
// Every setting is applied, and all errors are aggregated.
func (rc RootConfig) Apply(b *httpbuilder.Builder) (err error) {
	r := b.Request()
	if len(rc.URI) > 0 {
		err = multierr.Append(err, r.SetURI(rc.URI))
	}

	r.SetHeaders(rc.Headers)
	if len(rc.Accept) > 0 {
		r.SetAccept(rc.Accept...)
	}

	if len(rc.ContentType) > 0 {
		r.SetContentType(rc.ContentType)
	}

	if len(rc.Charset) > 0 {
		err = multierr.Append(err, r.SetCharset(rc.Charset))
	}

	for _, c := range rc.Cookies {
		r.CookieExpires(c.Name, c.Value, c.Expires)
	}

	err = multierr.Append(err, rc.Auth.ApplyTo(r.Auth()))
	return
}
