// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildercontent

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/xmidt-org/httpbuilder"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// rawBody returns a reader over a body that is already in wire form.
func rawBody(body any) (io.Reader, bool) {
	switch b := body.(type) {
	case io.Reader:
		return b, true

	case []byte:
		return bytes.NewReader(b), true

	case string:
		return strings.NewReader(b), true

	default:
		return nil, false
	}
}

// marshalBody sends raw bodies as is and everything else through marshal.
func marshalBody(cfg *httpbuilder.Config, ts httpbuilder.ToServer, marshal func(any) ([]byte, error)) error {
	body := cfg.Body()
	if r, ok := rawBody(body); ok {
		return ts.ToServer(r)
	}

	data, err := marshal(body)
	if err != nil {
		return err
	}

	return ts.ToServer(bytes.NewReader(data))
}

// EncodeText writes the body as text in the configured charset.  Bodies that
// are not strings, byte slices, or readers are formatted with fmt.Sprint.
func EncodeText(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	e, err := httpbuilder.Charset(cfg.Charset())
	if err != nil {
		return err
	}

	r, ok := rawBody(cfg.Body())
	if !ok {
		r = strings.NewReader(fmt.Sprint(cfg.Body()))
	}

	return ts.ToServer(transform.NewReader(r, e.NewEncoder()))
}

// EncodeJSON marshals the body with encoding/json.
func EncodeJSON(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	return marshalBody(cfg, ts, json.Marshal)
}

// EncodeXML marshals the body with encoding/xml.
func EncodeXML(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	return marshalBody(cfg, ts, xml.Marshal)
}

// EncodeYAML marshals the body with gopkg.in/yaml.v3.
func EncodeYAML(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	return marshalBody(cfg, ts, yaml.Marshal)
}

// EncodeForm writes the body as application/x-www-form-urlencoded.  Maps of strings
// are encoded directly.  Structs use `url` field tags.
func EncodeForm(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	body := cfg.Body()
	if r, ok := rawBody(body); ok {
		return ts.ToServer(r)
	}

	values, err := formValues(body)
	if err != nil {
		return err
	}

	return ts.ToServer(strings.NewReader(values.Encode()))
}

func formValues(body any) (url.Values, error) {
	switch b := body.(type) {
	case url.Values:
		return b, nil

	case map[string][]string:
		return url.Values(b), nil

	case map[string]string:
		values := make(url.Values, len(b))
		for k, v := range b {
			values.Set(k, v)
		}

		return values, nil

	case map[string]any:
		values := make(url.Values, len(b))
		for k, v := range b {
			values.Set(k, fmt.Sprint(v))
		}

		return values, nil

	default:
		return query.Values(body)
	}
}

// EncodeBinary writes strings, byte slices, and readers unchanged.  This is
// the default encoder installed by Install.
func EncodeBinary(cfg *httpbuilder.Config, ts httpbuilder.ToServer) error {
	body := cfg.Body()
	if r, ok := rawBody(body); ok {
		return ts.ToServer(r)
	}

	return &UnsupportedBodyError{
		ContentType: cfg.ContentType(),
		Type:        reflect.TypeOf(body),
	}
}
