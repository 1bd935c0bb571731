package httpclient

import (
	"time"

	"github.com/kbukum/puzzle/errors"
	"github.com/kbukum/puzzle/serializer"
	"github.com/kbukum/puzzle/transport"
	"github.com/kbukum/puzzle/validation"
)

// Config describes a client in a config file.
type Config struct {
	// Name is the component name. Defaults to "httpclient".
	Name string `yaml:"name" mapstructure:"name"`

	Host string `yaml:"host" mapstructure:"host" validate:"required"`
	Port string `yaml:"port" mapstructure:"port" validate:"omitempty,port"`

	// Secure enables https. Strict additionally verifies the host name.
	Secure bool `yaml:"secure" mapstructure:"secure"`
	Strict bool `yaml:"strict" mapstructure:"strict"`

	// CAFile verifies the server chain when verification is enabled.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file" validate:"omitempty,file"`

	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// Headers are raw "Name: value" lines sent with every request.
	Headers []string `yaml:"headers" mapstructure:"headers"`

	// Timeout bounds each request. Zero keeps the transport default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// Serializer is "json" (default) or "yaml".
	Serializer string `yaml:"serializer" mapstructure:"serializer" validate:"omitempty,oneof=json yaml yml"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "httpclient"
	}
	if c.Serializer == "" {
		c.Serializer = "json"
	}
}

// Validate checks the config. Failures are configuration errors.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.Configuration("invalid client config: %v", err).WithCause(err)
	}
	return nil
}

// NewFromConfig creates a client from cfg. Options given here override the
// serializer selected by cfg. Settings from cfg are not re-applied by Reset.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, ok := serializer.ByName(cfg.Serializer)
	if !ok {
		return nil, errors.Configuration("unknown serializer '%s'", cfg.Serializer)
	}
	opts = append([]Option{WithSerializer(s)}, opts...)

	c, err := New(cfg.Host, cfg.Port, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Secure {
		c.EnableSSL(cfg.Strict)
	}
	if cfg.CAFile != "" {
		c.setOption(transport.CAFile, cfg.CAFile)
	}
	if cfg.Username != "" {
		c.SetAuthentication(cfg.Username, cfg.Password)
	}
	if cfg.Timeout > 0 {
		c.setOption(transport.Timeout, cfg.Timeout)
	}
	for _, h := range cfg.Headers {
		c.SetHTTPHeader(h)
	}
	return c, nil
}
