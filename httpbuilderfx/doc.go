// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpbuilderfx integrates httpbuilder with go.uber.org/fx and spf13/viper.

Provide unmarshals a RootConfig from a viper key, builds the root
*httpbuilder.Config from it, and constructs an *httpbuilderclient.Client:

	app := fx.New(
		fx.Supply(v), // the *viper.Viper
		httpbuilderfx.Provide("api"),
		httpbuilderfx.Options(httpbuildercontent.Install),
		fx.Invoke(func(c *httpbuilderclient.Client) { ... }),
	)

with configuration such as:

	api:
	  uri: https://api.example.com/v1
	  accept: [application/json]
	  auth:
	    type: digest
	    user: joe
	    password: secret
	  client:
	    timeout: 15s
*/
package httpbuilderfx
