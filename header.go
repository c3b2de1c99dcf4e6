// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"net/http"
	"sort"
)

// Header is an ordered set of single-valued HTTP headers.  Keys are stored
// canonicalized through http.CanonicalHeaderKey, so two keys that differ only
// by case refer to the same header.  Setting an existing key replaces its value
// but keeps its original position.
//
// The zero value is an empty Header ready to use.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeaderFromMap builds a Header from a plain map.  Since map iteration order is
// undefined, keys are inserted in sorted order.  Blank keys are skipped.
func NewHeaderFromMap(src map[string]string) (h Header) {
	keys := make([]string, 0, len(src))
	for key := range src {
		if len(key) > 0 {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	for _, key := range keys {
		h.Set(key, src[key])
	}

	return
}

// NewHeaders builds a Header from key/value pairs.  A dangling key gets
// a blank value.
func NewHeaders(kv ...string) (h Header) {
	for i, j := 0, 1; i < len(kv); i, j = i+2, j+2 {
		if j < len(kv) {
			h.Set(kv[i], kv[j])
		} else {
			h.Set(kv[i], "")
		}
	}

	return
}

// Len returns the number of distinct keys.
func (h Header) Len() int {
	return len(h.keys)
}

// Set stores a value, replacing any existing value for the same canonical key.
// A blank key is ignored.
func (h *Header) Set(key, value string) {
	if len(key) == 0 {
		return
	}

	key = http.CanonicalHeaderKey(key)
	if h.values == nil {
		h.values = make(map[string]string)
	}

	if _, exists := h.values[key]; !exists {
		h.keys = append(h.keys, key)
	}

	h.values[key] = value
}

// Get returns the value for a key, matched case insensitively.
func (h Header) Get(key string) (value string, ok bool) {
	value, ok = h.values[http.CanonicalHeaderKey(key)]
	return
}

// Keys returns the canonical keys in insertion order.  The returned slice
// is a copy.
func (h Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Each visits every key/value pair in insertion order.
func (h Header) Each(f func(key, value string)) {
	for _, key := range h.keys {
		f(key, h.values[key])
	}
}

// Clone returns a deep copy of this Header.
func (h Header) Clone() (clone Header) {
	if len(h.keys) > 0 {
		clone.keys = append(make([]string, 0, len(h.keys)), h.keys...)
		clone.values = make(map[string]string, len(h.values))
		for key, value := range h.values {
			clone.values[key] = value
		}
	}

	return
}

// Merge returns a new Header containing this Header's entries overlaid with
// the entries of more.  Neither Header is modified.
func (h Header) Merge(more Header) Header {
	merged := h.Clone()
	more.Each(merged.Set)
	return merged
}

// SetTo writes each entry to an http.Header using Set semantics, so that
// each key is sent exactly once.
func (h Header) SetTo(dst http.Header) {
	h.Each(func(key, value string) {
		dst[key] = []string{value}
	})
}
