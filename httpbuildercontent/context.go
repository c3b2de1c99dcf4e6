// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildercontent

import (
	"reflect"

	"github.com/xmidt-org/httpbuilder"
)

// ContextID identifies the context entries the parsers in this package read.
type ContextID int

const (
	// Lazy is mapped to true to make ParseJSON return a gjson.Result
	// instead of decoding the whole document.
	Lazy ContextID = iota + 1

	// Target is mapped to the reflect.Type that ParseJSON, ParseXML, and ParseYAML
	// decode into.  The parsers return a pointer to a new value of that type.
	Target
)

func (id ContextID) String() string {
	switch id {
	case Lazy:
		return "lazy"

	case Target:
		return "target"

	default:
		return "unknown"
	}
}

// LazyJSON is an httpbuilder.Option that turns on Lazy for every JSON content type.
func LazyJSON(b *httpbuilder.Builder) error {
	return b.ContextAll(JSON, Lazy, true)
}

// DecodeInto returns an httpbuilder.Option that makes the parsers for the given
// content types decode into a new *T.
func DecodeInto[T any](contentTypes ...string) httpbuilder.Option {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return func(b *httpbuilder.Builder) error {
		return b.ContextAll(contentTypes, Target, t)
	}
}

// newTarget allocates the value configured with Target, if any.
func newTarget(cfg *httpbuilder.Config, contentType string) (any, bool) {
	t, ok := httpbuilder.ContextValue[reflect.Type](cfg, contentType, Target)
	if !ok || t == nil {
		return nil, false
	}

	return reflect.New(t).Interface(), true
}
