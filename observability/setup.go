package observability

import (
	"context"
	stderrors "errors"
	"time"
)

// Config is the telemetry section of a config file.
type Config struct {
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"min=0,max=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// Enabled reports whether an exporter endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// Shutdown flushes and stops the providers created by Setup.
type Shutdown func(context.Context) error

// Setup initializes tracing and metrics when cfg is enabled. When it is not,
// the global no-op providers stay in place and Shutdown does nothing.
func Setup(ctx context.Context, cfg Config, serviceName, serviceVersion, environment string) (Shutdown, error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	tc := TracerConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		SampleRate:     cfg.SampleRate,
	}
	if tc.SampleRate == 0 {
		tc.SampleRate = 1.0
	}
	tp, err := InitTracer(ctx, tc)
	if err != nil {
		return nil, err
	}

	mp, err := InitMeter(ctx, MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		Interval:       cfg.Interval,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return stderrors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}, nil
}
