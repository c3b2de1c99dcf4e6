// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCharset is the charset assumed for textual content when none is configured.
const DefaultCharset = "utf-8"

// Charset looks up the text encoding for a charset name using the WHATWG
// encoding index, so aliases such as "latin1" are accepted.  The blank name
// yields UTF-8.
func Charset(name string) (encoding.Encoding, error) {
	if len(name) == 0 {
		return unicode.UTF8, nil
	}

	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, &InvalidCharsetError{Charset: name, Err: err}
	}

	return e, nil
}

// canonicalCharset validates a charset and returns its canonical name.
func canonicalCharset(name string) (string, error) {
	e, err := Charset(name)
	if err != nil {
		return "", err
	}

	canonical, err := htmlindex.Name(e)
	if err != nil {
		return "", &InvalidCharsetError{Charset: name, Err: err}
	}

	return canonical, nil
}
