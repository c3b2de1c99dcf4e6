// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// responseFromServer adapts an *http.Response to the FromServer interface.
type responseFromServer struct {
	response    *http.Response
	contentType string
	charset     string
}

// NewFromServer wraps an *http.Response.  The caller remains responsible for
// closing the response body.
func NewFromServer(response *http.Response) FromServer {
	fs := &responseFromServer{
		response: response,
	}

	fs.contentType, fs.charset = parseContentType(response.Header.Get("Content-Type"))
	return fs
}

// parseContentType splits a Content-Type header into its lowercased media type
// and charset parameter.  A malformed header still yields a best-effort media type.
func parseContentType(v string) (mediaType, charset string) {
	if len(v) == 0 {
		return
	}

	mt, params, err := mime.ParseMediaType(v)
	if err != nil {
		mt, _, _ = strings.Cut(v, ";")
		return strings.ToLower(strings.TrimSpace(mt)), ""
	}

	return mt, params["charset"]
}

func (fs *responseFromServer) StatusCode() int {
	return fs.response.StatusCode
}

// Message is the reason phrase of the status line.  Responses without one,
// such as those built in memory, fall back to the standard text for the code.
func (fs *responseFromServer) Message() string {
	code := strconv.Itoa(fs.response.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(fs.response.Status, code)); len(reason) > 0 {
		return reason
	}

	return http.StatusText(fs.response.StatusCode)
}

func (fs *responseFromServer) Header() http.Header {
	return fs.response.Header
}

func (fs *responseFromServer) ContentType() string {
	return fs.contentType
}

func (fs *responseFromServer) Charset() string {
	return fs.charset
}

func (fs *responseFromServer) HasBody() bool {
	switch {
	case fs.response.Body == nil || fs.response.Body == http.NoBody:
		return false

	case fs.response.ContentLength == 0:
		return false

	case fs.response.StatusCode == http.StatusNoContent || fs.response.StatusCode == http.StatusNotModified:
		return false

	case fs.response.Request != nil && fs.response.Request.Method == http.MethodHead:
		return false

	default:
		return true
	}
}

func (fs *responseFromServer) Body() io.Reader {
	if fs.response.Body == nil {
		return http.NoBody
	}

	return fs.response.Body
}

func (fs *responseFromServer) URI() *url.URL {
	if fs.response.Request != nil {
		return fs.response.Request.URL
	}

	return nil
}
