// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"strings"
)

// Status is the coarse classification of an HTTP status code.
type Status int

const (
	// Success is the class of all 2xx status codes.
	Success Status = iota

	// Failure is the class of every status code outside of 2xx.
	Failure
)

// StatusOf classifies an HTTP status code.  Every integer falls into
// exactly one class.
func StatusOf(code int) Status {
	if code >= 200 && code <= 299 {
		return Success
	}

	return Failure
}

// String returns the lowercase name of this status class.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"

	case Failure:
		return "failure"

	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText allows a Status to be decoded from configuration.  Matching
// is case insensitive.
func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "success":
		*s = Success

	case "failure":
		*s = Failure

	default:
		return &UnknownNameError{Kind: "status", Name: string(text)}
	}

	return nil
}
