// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/xmidt-org/httpbuilder"
	"github.com/xmidt-org/httpbuilder/internal/httpbuilderreflect"
	"go.uber.org/zap"
)

// ErrNilHTTPClient is returned by the HTTPClient option when passed a nil client.
var ErrNilHTTPClient = errors.New("the *http.Client cannot be nil")

// Client executes requests against a root configuration.  A Client is safe
// for concurrent use.
type Client struct {
	root       *httpbuilder.Config
	http       *http.Client
	middleware RoundTripperChain
	logger     *zap.Logger
	now        func() time.Time
	nonces     *digestNonces
}

// HTTPClient sets the *http.Client that requests are sent through.  By default,
// a zero-value *http.Client is used.
func HTTPClient(hc *http.Client) Option[Client] {
	if hc == nil {
		return InvalidOption[Client](ErrNilHTTPClient)
	}

	return OptionFunc[Client](func(c *Client) error {
		c.http = hc
		return nil
	})
}

// Logger sets the logger for request execution.  A nil logger disables logging.
func Logger(l *zap.Logger) Option[Client] {
	return OptionFunc[Client](func(c *Client) error {
		c.logger = l
		return nil
	})
}

// Middleware adds decorators to the transport.  They run in the order given,
// outside of any authentication.
func Middleware(ctors ...RoundTripperConstructor) Option[Client] {
	return OptionFunc[Client](func(c *Client) error {
		c.middleware = c.middleware.Append(ctors...)
		return nil
	})
}

// Clock sets the time source used to drop expired cookies.
func Clock(now func() time.Time) Option[Client] {
	return OptionFunc[Client](func(c *Client) error {
		c.now = now
		return nil
	})
}

// New creates a Client for a root configuration.  A nil root is treated as
// an empty configuration.
func New(root *httpbuilder.Config, opts ...Option[Client]) (*Client, error) {
	c := &Client{
		root:   root,
		nonces: new(digestNonces),
	}

	if err := Options[Client](opts).Apply(c); err != nil {
		return nil, err
	}

	c.root = httpbuilderreflect.Safe(c.root, httpbuilder.New().Build())
	c.http = httpbuilderreflect.Safe(c.http, new(http.Client))
	c.logger = httpbuilderreflect.Safe(c.logger, zap.NewNop())
	if c.now == nil {
		c.now = time.Now
	}

	return c, nil
}

// Root returns the configuration every execution derives from.
func (c *Client) Root() *httpbuilder.Config {
	return c.root
}

// CloseIdleConnections closes idle connections of the underlying *http.Client.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// transport builds the round tripper for one execution.
func (c *Client) transport(cfg *httpbuilder.Config, logger *zap.Logger) http.RoundTripper {
	chain := c.middleware
	if ctor := authenticator(cfg.Auth(), c.nonces, logger); ctor != nil {
		chain = chain.Append(ctor)
	}

	return chain.Then(
		httpbuilderreflect.Safe[http.RoundTripper](c.http.Transport, http.DefaultTransport),
	)
}

// Exec derives a configuration from the root, applies opts to it, and sends the
// described request with the given method.  The response is dispatched to the
// Handler selected by its status code, and the Handler's result is returned.
//
// Errors from the options, from encoding, from the transport, and from
// dispatching are all returned as is.
func (c *Client) Exec(ctx context.Context, method string, opts ...httpbuilder.Option) (any, error) {
	b := c.root.Derive()
	if err := b.Apply(opts...); err != nil {
		return nil, err
	}

	cfg := b.Build()
	request, err := c.newRequest(ctx, method, cfg)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With(
		zap.String("method", method),
		zap.Stringer("url", request.URL),
	)

	client := *c.http
	client.Transport = c.transport(cfg, logger)

	logger.Debug("sending request")
	response, err := client.Do(request)
	if err != nil {
		logger.Debug("request failed", zap.Error(err))
		return nil, err
	}

	defer discard(response)
	logger.Debug("received response", zap.Int("status", response.StatusCode))
	return httpbuilder.Dispatch(cfg, httpbuilder.NewFromServer(response))
}

// Get executes a GET.
func (c *Client) Get(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodGet, opts...)
}

// Head executes a HEAD.  Responses to a HEAD are never parsed.
func (c *Client) Head(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodHead, opts...)
}

// Post executes a POST.
func (c *Client) Post(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodPost, opts...)
}

// Put executes a PUT.
func (c *Client) Put(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodPut, opts...)
}

// Patch executes a PATCH.
func (c *Client) Patch(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodPatch, opts...)
}

// Delete executes a DELETE.
func (c *Client) Delete(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodDelete, opts...)
}

// Options executes an OPTIONS.
func (c *Client) Options(ctx context.Context, opts ...httpbuilder.Option) (any, error) {
	return c.Exec(ctx, http.MethodOptions, opts...)
}

// ResultTypeError is returned by Result when an execution produced a value of
// an unexpected type.
type ResultTypeError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (rte *ResultTypeError) Error() string {
	var o strings.Builder
	o.WriteString("expected a result of type ")
	o.WriteString(rte.Expected.String())
	o.WriteString(", got ")
	o.WriteString(rte.Actual.String())
	return o.String()
}

// Result is a typed view of what an execution returns:
//
//	w, err := httpbuilderclient.Result[*Widget](client.Get(ctx, opts...))
//
// A nil result yields the zero T.
func Result[T any](result any, err error) (T, error) {
	var zero T
	if err != nil || result == nil {
		return zero, err
	}

	t, ok := result.(T)
	if !ok {
		return zero, &ResultTypeError{
			Expected: reflect.TypeOf((*T)(nil)).Elem(),
			Actual:   reflect.TypeOf(result),
		}
	}

	return t, nil
}
