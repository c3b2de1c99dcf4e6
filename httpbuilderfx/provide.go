// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderfx

import (
	"context"

	"github.com/spf13/viper"
	"github.com/xmidt-org/httpbuilder"
	"github.com/xmidt-org/httpbuilder/httpbuilderclient"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// OptionGroup is the fx value group of httpbuilder.Option that Provide applies
// to the root configuration, after the RootConfig.
const OptionGroup = "httpbuilder.options"

// UnmarshalIn is the set of dependencies for unmarshaling a RootConfig.
type UnmarshalIn struct {
	fx.In

	// Viper is the required configuration source.
	Viper *viper.Viper

	// DecodeOptions are applied after DecodeHooks.
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`
}

// ConfigIn is the set of dependencies for building the root *httpbuilder.Config.
type ConfigIn struct {
	fx.In

	RootConfig RootConfig
	Options    []httpbuilder.Option `group:"httpbuilder.options"`
}

// ClientIn is the set of dependencies for the *httpbuilderclient.Client.
type ClientIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	RootConfig RootConfig
	Root       *httpbuilder.Config

	// Logger is optional.  Without it, the client does not log.
	Logger *zap.Logger `optional:"true"`

	// Middleware decorates the client's transport, in order.
	Middleware []httpbuilderclient.RoundTripperConstructor `optional:"true"`
}

// Unmarshal reads a RootConfig from a viper key.
func Unmarshal(key string, in UnmarshalIn) (rc RootConfig, err error) {
	err = in.Viper.UnmarshalKey(
		key,
		&rc,
		mergeDecodeOptions(
			[]viper.DecoderConfigOption{DecodeHooks},
			in.DecodeOptions,
		),
	)

	return
}

// NewConfig builds the root configuration.
func NewConfig(in ConfigIn) (*httpbuilder.Config, error) {
	b := httpbuilder.New()
	if err := b.Apply(in.RootConfig.Apply); err != nil {
		return nil, err
	}

	if err := b.Apply(in.Options...); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// NewClient creates the executor for the root configuration.  Idle connections
// are closed when the enclosing fx.App stops.
func NewClient(in ClientIn) (*httpbuilderclient.Client, error) {
	hc, err := in.RootConfig.Client.NewClient()
	if err != nil {
		return nil, err
	}

	client, err := httpbuilderclient.New(
		in.Root,
		httpbuilderclient.HTTPClient(hc),
		httpbuilderclient.Logger(in.Logger),
		httpbuilderclient.Middleware(in.Middleware...),
	)

	if err != nil {
		return nil, err
	}

	in.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.CloseIdleConnections()
			return nil
		},
	})

	return client, nil
}

// Provide unmarshals a RootConfig from the given viper key and provides it along
// with the root *httpbuilder.Config and an *httpbuilderclient.Client.
func Provide(key string) fx.Option {
	return fx.Provide(
		func(in UnmarshalIn) (RootConfig, error) {
			return Unmarshal(key, in)
		},
		NewConfig,
		NewClient,
	)
}

// Options contributes httpbuilder options to the root configuration through OptionGroup.
func Options(opts ...httpbuilder.Option) fx.Option {
	providers := make([]fx.Option, 0, len(opts))
	for _, o := range opts {
		o := o
		providers = append(providers, fx.Provide(
			fx.Annotated{
				Group: OptionGroup,
				Target: func() httpbuilder.Option {
					return o
				},
			},
		))
	}

	return fx.Options(providers...)
}

// Logger routes fx's own events to the *zap.Logger component.
func Logger() fx.Option {
	return fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l}
	})
}
