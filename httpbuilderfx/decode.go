// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderfx

import (
	"encoding"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Exact makes unmarshaling fail on configuration keys that match no field.
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// DecodeHooks is a viper option that installs the decode hooks RootConfig needs:
// durations and RFC 3339 times from strings, comma-separated slices, and any
// type that implements encoding.TextUnmarshaler, such as httpbuilder.AuthType.
func DecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

// mergeDecodeOptions flattens groups of options into one, applied in order.
func mergeDecodeOptions(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that converts strings
// with the destination type's UnmarshalText.  Both T, where *T is the
// TextUnmarshaler, and *T are supported.  Anything else is returned unchanged.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok {
		return src, nil
	}

	switch {
	case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
		ptr := reflect.New(to)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Elem().Interface(), err

	case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
		ptr := reflect.New(to.Elem())
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Interface(), err

	default:
		return src, nil
	}
}
