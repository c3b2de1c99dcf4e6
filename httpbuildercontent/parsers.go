// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildercontent

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"net/url"

	"github.com/tidwall/gjson"
	"github.com/xmidt-org/httpbuilder"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// Node is the generic result of ParseXML when no Target is configured.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Child returns the first child element with the given local name.
func (n *Node) Child(name string) (*Node, bool) {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i], true
		}
	}

	return nil, false
}

// charsetReader converts a body in the named charset to UTF-8.
func charsetReader(charset string, body io.Reader) (io.Reader, error) {
	e, err := httpbuilder.Charset(charset)
	if err != nil {
		return nil, err
	}

	return transform.NewReader(body, e.NewDecoder()), nil
}

// ParseText returns the body as a string, decoded from the response's charset.
func ParseText(_ *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	r, err := charsetReader(fs.Charset(), fs.Body())
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// ParseJSON decodes a JSON body.  With Lazy set, the result is a gjson.Result.
// With Target set, the result is a pointer to the target type.  Otherwise, the
// body is decoded into the generic encoding/json representation.
func ParseJSON(cfg *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	if lazy, _ := httpbuilder.ContextValue[bool](cfg, fs.ContentType(), Lazy); lazy {
		data, err := io.ReadAll(fs.Body())
		if err != nil {
			return nil, err
		}

		if !gjson.ValidBytes(data) {
			return nil, ErrInvalidJSON
		}

		return gjson.ParseBytes(data), nil
	}

	d := json.NewDecoder(fs.Body())
	if target, ok := newTarget(cfg, fs.ContentType()); ok {
		return target, d.Decode(target)
	}

	var v any
	err := d.Decode(&v)
	return v, err
}

// ParseXML decodes an XML body into the Target type, or into a *Node.
// Charsets declared in the XML prolog are honored.
func ParseXML(cfg *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	d := xml.NewDecoder(fs.Body())
	d.CharsetReader = charsetReader

	target, ok := newTarget(cfg, fs.ContentType())
	if !ok {
		target = new(Node)
	}

	return target, d.Decode(target)
}

// ParseYAML decodes a YAML body into the Target type, or into the generic
// gopkg.in/yaml.v3 representation.
func ParseYAML(cfg *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	d := yaml.NewDecoder(fs.Body())
	if target, ok := newTarget(cfg, fs.ContentType()); ok {
		return target, d.Decode(target)
	}

	var v any
	err := d.Decode(&v)
	return v, err
}

// ParseForm decodes an application/x-www-form-urlencoded body into url.Values.
func ParseForm(_ *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	data, err := io.ReadAll(fs.Body())
	if err != nil {
		return nil, err
	}

	return url.ParseQuery(string(data))
}

// ParseBinary returns the body as a []byte.  This is the default parser installed by Install.
func ParseBinary(_ *httpbuilder.Config, fs httpbuilder.FromServer) (any, error) {
	return io.ReadAll(fs.Body())
}
