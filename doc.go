// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpbuilder is a fluent configuration layer for HTTP clients.

A root configuration is assembled once with a Builder and frozen with Build:

	b := httpbuilder.New()
	b.Request().SetURI("https://api.example.com/v1")
	b.Request().SetAccept("application/json")
	b.Request().Auth().Basic("user", "secret", true)
	b.Response().Failure(func(fs httpbuilder.FromServer, body any) (any, error) {
		return nil, fmt.Errorf("api error %d", fs.StatusCode())
	})

	root := b.Build()

Each use derives a child Builder from the shared, immutable root.  Anything
the child does not set is read through to the root:

	child := root.Derive()
	child.Request().URI().AppendPath("widgets", "42")
	child.Response().WhenCode(404, notFound)
	cfg := child.Build()

The transport then encodes the body with Encode and, once a response arrives,
hands it to Dispatch.  Dispatch chooses a Handler by exact status code, then
textual status code, then status class, and parses the body with the Parser
registered for the response content type.
*/
package httpbuilder
