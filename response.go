// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

// Response is the response half of a Builder: the status handlers and the
// parsers for response bodies.
type Response struct {
	codeHandlers  map[int]Handler
	textHandlers  map[string]Handler
	classHandlers map[Status]Handler

	parsers       map[string]Parser
	defaultParser Parser
}

// When registers a Handler for every response in a status class.
func (r *Response) When(s Status, h Handler) *Response {
	if r.classHandlers == nil {
		r.classHandlers = make(map[Status]Handler)
	}

	r.classHandlers[s] = h
	return r
}

// WhenCode registers a Handler for an exact status code.  This takes precedence
// over any class Handler.
func (r *Response) WhenCode(code int, h Handler) *Response {
	if r.codeHandlers == nil {
		r.codeHandlers = make(map[int]Handler)
	}

	r.codeHandlers[code] = h
	return r
}

// WhenText registers a Handler for a status code given in its textual form,
// e.g. "404".  Numeric handlers are consulted first.
func (r *Response) WhenText(code string, h Handler) *Response {
	if r.textHandlers == nil {
		r.textHandlers = make(map[string]Handler)
	}

	r.textHandlers[code] = h
	return r
}

// HandlerFor returns the Handler registered on this Response for an exact status code.
func (r *Response) HandlerFor(code int) (h Handler, ok bool) {
	h, ok = r.codeHandlers[code]
	return
}

// Success is shorthand for When(Success, h).
func (r *Response) Success(h Handler) *Response {
	return r.When(Success, h)
}

// Failure is shorthand for When(Failure, h).
func (r *Response) Failure(h Handler) *Response {
	return r.When(Failure, h)
}

// Parser registers a Parser for a response content type.  Content types are
// matched exactly against the lowercased media type of the response.
func (r *Response) Parser(contentType string, p Parser) *Response {
	if r.parsers == nil {
		r.parsers = make(map[string]Parser)
	}

	r.parsers[contentType] = p
	return r
}

// ParserAll registers the same Parser under each content type.
func (r *Response) ParserAll(contentTypes []string, p Parser) *Response {
	for _, ct := range contentTypes {
		r.Parser(ct, p)
	}

	return r
}

// ParserFor returns the Parser registered on this Response for an exact content type.
func (r *Response) ParserFor(contentType string) (p Parser, ok bool) {
	p, ok = r.parsers[contentType]
	return
}

// DefaultParser sets the Parser used when no content type specific Parser exists.
func (r *Response) DefaultParser(p Parser) *Response {
	r.defaultParser = p
	return r
}

func (r *Response) clone() *Response {
	return &Response{
		codeHandlers:  cloneMap(r.codeHandlers),
		textHandlers:  cloneMap(r.textHandlers),
		classHandlers: cloneMap(r.classHandlers),
		parsers:       cloneMap(r.parsers),
		defaultParser: r.defaultParser,
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if len(m) == 0 {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}

	return clone
}
