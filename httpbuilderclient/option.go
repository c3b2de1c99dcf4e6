// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import "go.uber.org/multierr"

// Option modifies a target during construction.  This package uses Option[Client]
// for executors and Option[http.Client] for the clients built from a ClientConfig.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure type that can act as an Option.
type OptionFunc[T any] func(*T) error

func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options groups several options into one.
type Options[T any] []Option[T]

// Apply runs every option, even after a failure.  The returned error aggregates
// all failures and can be inspected with go.uber.org/multierr.
func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// InvalidOption returns an Option that always fails with err, for reporting
// setup problems without a nil Option or a panic.
func InvalidOption[T any](err error) Option[T] {
	return OptionFunc[T](func(*T) error {
		return err
	})
}
