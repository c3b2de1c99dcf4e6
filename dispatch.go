// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import "strconv"

// PassThrough is the built-in Success handler.  It returns the parsed body as is.
func PassThrough(_ FromServer, body any) (any, error) {
	return body, nil
}

// RaiseStatus is the built-in Failure handler.  It returns a *StatusError
// carrying the parsed body.
func RaiseStatus(fs FromServer, body any) (any, error) {
	return nil, &StatusError{
		StatusCode: fs.StatusCode(),
		Message:    fs.Message(),
		Body:       body,
	}
}

// Handler selects the Handler for a status code.  Each step below is tried
// against the whole chain before moving on to the next:
//
//   - a Handler registered with WhenCode for the exact code
//   - a Handler registered with WhenText for the code's decimal text
//   - a Handler registered with When for the code's Status class
//   - PassThrough for Success, RaiseStatus for Failure
func (c *Config) Handler(code int) Handler {
	if h, ok := traverse(c, func(c *Config) (Handler, bool) {
		return c.response.HandlerFor(code)
	}); ok {
		return h
	}

	text := strconv.Itoa(code)
	if h, ok := traverse(c, func(c *Config) (h Handler, ok bool) {
		h, ok = c.response.textHandlers[text]
		return
	}); ok {
		return h
	}

	status := StatusOf(code)
	if h, ok := traverse(c, func(c *Config) (h Handler, ok bool) {
		h, ok = c.response.classHandlers[status]
		return
	}); ok {
		return h
	}

	if status == Success {
		return PassThrough
	}

	return RaiseStatus
}

// Dispatch routes a response to its Handler.  The body, if any, is parsed
// with the Parser resolved for the response's content type before the
// Handler is invoked.  Errors from the Parser or the Handler are returned as is.
func Dispatch(cfg *Config, fs FromServer) (any, error) {
	h := cfg.Handler(fs.StatusCode())

	var body any
	if fs.HasBody() {
		p, ok := cfg.Parser(fs.ContentType())
		if !ok {
			return nil, &UnsupportedContentTypeError{
				Direction:   Parsing,
				ContentType: fs.ContentType(),
			}
		}

		var err error
		if body, err = p(cfg, fs); err != nil {
			return nil, err
		}
	}

	return h(fs, body)
}

// Encode writes the effective request body through the Encoder resolved for the
// effective content type.  A nil body is not encoded.
func Encode(cfg *Config, ts ToServer) error {
	if cfg.Body() == nil {
		return nil
	}

	contentType := cfg.ContentType()
	e, ok := cfg.Encoder(contentType)
	if !ok {
		return &UnsupportedContentTypeError{
			Direction:   Encoding,
			ContentType: contentType,
		}
	}

	return e(cfg, ts)
}
