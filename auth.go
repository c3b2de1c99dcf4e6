// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"strings"
)

// AuthType identifies the HTTP authentication scheme used by a request.
type AuthType int

const (
	// AuthNone sends no credentials.  This is the default.
	AuthNone AuthType = iota

	// AuthBasic uses RFC 7617 basic authentication.
	AuthBasic

	// AuthDigest uses RFC 7616 digest authentication.
	AuthDigest
)

// String returns the lowercase name of this type.
func (at AuthType) String() string {
	switch at {
	case AuthNone:
		return "none"

	case AuthBasic:
		return "basic"

	case AuthDigest:
		return "digest"

	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (at AuthType) MarshalText() ([]byte, error) {
	return []byte(at.String()), nil
}

// UnmarshalText allows an AuthType to be decoded from configuration.  The blank
// string decodes to AuthNone.
func (at *AuthType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "none":
		*at = AuthNone

	case "basic":
		*at = AuthBasic

	case "digest":
		*at = AuthDigest

	default:
		return &UnknownNameError{Kind: "auth type", Name: string(text)}
	}

	return nil
}

// Auth holds the authentication settings for a request.  The zero value
// is unset: it sends no credentials and, in a derived configuration, defers
// to the parent's Auth.
//
// The authentication modes are mutually exclusive.  Each call to Basic,
// Digest, or None replaces whatever was previously configured.
type Auth struct {
	set        bool
	authType   AuthType
	user       string
	password   string
	preemptive bool
}

// Type returns the configured authentication scheme.
func (a Auth) Type() AuthType { return a.authType }

// User returns the configured user, which is blank for AuthNone.
func (a Auth) User() string { return a.user }

// Password returns the configured password, which is blank for AuthNone.
func (a Auth) Password() string { return a.password }

// Preemptive indicates whether credentials are sent with the first request
// rather than only in response to a challenge.
func (a Auth) Preemptive() bool { return a.preemptive }

// Basic configures basic authentication.  Credentials are required: a blank
// user yields ErrMissingCredentials and leaves this Auth unchanged.  The password
// is not validated here, and may be empty, since a wrong password can only be
// detected by the server.
func (a *Auth) Basic(user, password string, preemptive bool) error {
	return a.configure(AuthBasic, user, password, preemptive)
}

// Digest configures digest authentication.  Credentials are required: a blank
// user yields ErrMissingCredentials and leaves this Auth unchanged.  The password
// is not validated here, and may be empty, since a wrong password can only be
// detected by the server.
func (a *Auth) Digest(user, password string, preemptive bool) error {
	return a.configure(AuthDigest, user, password, preemptive)
}

// None explicitly disables authentication, which also overrides any
// authentication inherited from a parent configuration.
func (a *Auth) None() {
	*a = Auth{set: true}
}

// IsSet reports whether Basic, Digest, or None has been called.
func (a Auth) IsSet() bool { return a.set }

func (a *Auth) configure(at AuthType, user, password string, preemptive bool) error {
	if len(user) == 0 {
		return ErrMissingCredentials
	}

	*a = Auth{
		set:        true,
		authType:   at,
		user:       user,
		password:   password,
		preemptive: preemptive,
	}

	return nil
}
