// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/xmidt-org/httpbuilder"
)

// contentType is the Content-Type header value for a configuration, with the
// charset parameter when one is configured.
func contentType(cfg *httpbuilder.Config) string {
	ct := cfg.ContentType()
	if cs := cfg.Charset(); len(ct) > 0 && len(cs) > 0 {
		if formatted := mime.FormatMediaType(ct, map[string]string{"charset": cs}); len(formatted) > 0 {
			return formatted
		}
	}

	return ct
}

// newRequest converts a built configuration into an *http.Request.  The body
// is buffered so that authentication can replay it.
func (c *Client) newRequest(ctx context.Context, method string, cfg *httpbuilder.Config) (*http.Request, error) {
	u := cfg.URL()
	if !u.IsAbs() || len(u.Host) == 0 {
		return nil, &httpbuilder.MalformedURIError{URI: u.String()}
	}

	var body io.Reader
	err := httpbuilder.Encode(cfg, httpbuilder.ToServerFunc(func(r io.Reader) error {
		data, err := io.ReadAll(r)
		body = bytes.NewReader(data)
		return err
	}))

	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	cfg.Header().SetTo(request.Header)
	if accept := cfg.Accept(); len(accept) > 0 {
		request.Header.Set("Accept", strings.Join(accept, ", "))
	}

	if ct := contentType(cfg); body != nil && len(ct) > 0 {
		request.Header.Set("Content-Type", ct)
	}

	now := c.now()
	for _, cookie := range cfg.Cookies() {
		if !cookie.Expired(now) {
			request.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}

	return request, nil
}
