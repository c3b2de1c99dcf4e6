// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildercontent

import "github.com/xmidt-org/httpbuilder"

// The content types under which Install registers each codec.
var (
	Text   = []string{"text/plain"}
	JSON   = []string{"application/json", "application/javascript", "text/javascript"}
	XML    = []string{"application/xml", "text/xml", "application/xhtml+xml", "application/atom+xml"}
	YAML   = []string{"application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml"}
	Form   = []string{"application/x-www-form-urlencoded"}
	Binary = []string{"application/octet-stream"}
)

// Install is an httpbuilder.Option that registers every standard encoder and
// parser.  EncodeBinary and ParseBinary become the defaults.
func Install(b *httpbuilder.Builder) error {
	b.Request().
		EncoderAll(Text, EncodeText).
		EncoderAll(JSON, EncodeJSON).
		EncoderAll(XML, EncodeXML).
		EncoderAll(YAML, EncodeYAML).
		EncoderAll(Form, EncodeForm).
		EncoderAll(Binary, EncodeBinary).
		DefaultEncoder(EncodeBinary)

	b.Response().
		ParserAll(Text, ParseText).
		ParserAll(JSON, ParseJSON).
		ParserAll(XML, ParseXML).
		ParserAll(YAML, ParseYAML).
		ParserAll(Form, ParseForm).
		ParserAll(Binary, ParseBinary).
		DefaultParser(ParseBinary)

	return nil
}
