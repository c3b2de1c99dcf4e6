// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpbuildercontent supplies the standard encoders and parsers for
the content types most HTTP services speak: plain text, JSON, XML, YAML,
url-encoded forms, and raw binary.

Install registers all of them on a Builder, with binary as the fallback in
both directions:

	b := httpbuilder.New()
	err := b.Apply(
		httpbuildercontent.Install,
		httpbuildercontent.LazyJSON,
		httpbuildercontent.DecodeInto[Widget](httpbuildercontent.YAML...),
	)

Parsers consult the context of the Config they run under, keyed by the
response's content type.  See Lazy and Target.
*/
package httpbuildercontent
