// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpbuilderclient executes requests described by httpbuilder
configurations using net/http.

A Client holds a root *httpbuilder.Config.  Every execution derives a child
configuration from that root, applies the per-call options to the child
only, and dispatches the response through the child's handlers:

	b := httpbuilder.New()
	b.Apply(httpbuildercontent.Install)
	b.Request().SetURI("https://api.example.com/v1")

	client, err := httpbuilderclient.New(b.Build())
	result, err := client.Get(ctx, func(b *httpbuilder.Builder) error {
		b.Request().URI().AppendPath("widgets", "123")
		return nil
	})

Basic and digest authentication configured through httpbuilder.Auth are
carried out by round trippers that answer the server's challenge, or that send
credentials up front when the Auth is preemptive.
*/
package httpbuilderclient
