// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package httpbuildertest contains test helpers for code that uses httpbuilder:
// a mocked http.RoundTripper, canned responses, and capturing sinks for encoders.
package httpbuildertest
