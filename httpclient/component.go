package httpclient

import (
	"context"
	"strconv"

	"github.com/kbukum/puzzle/component"
)

// Component manages a Client built from Config.
type Component struct {
	config Config
	opts   []Option
	client *Client
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a component. The client is built in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	cfg.ApplyDefaults()
	return &Component{config: cfg, opts: opts}
}

// Name returns the configured name.
func (c *Component) Name() string {
	return c.config.Name
}

// Start builds the client.
func (c *Component) Start(_ context.Context) error {
	cl, err := NewFromConfig(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = cl
	return nil
}

// Stop closes the client.
func (c *Component) Stop(_ context.Context) error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// Health is unhealthy until Start succeeds.
func (c *Component) Health(_ context.Context) component.Health {
	if c.client == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "client not started",
		}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Client returns the client, or nil before Start.
func (c *Component) Client() *Client {
	return c.client
}

// Describe summarizes the target host.
func (c *Component) Describe() component.Description {
	scheme := SchemePlain
	if c.config.Secure {
		scheme = SchemeSecure
	}
	details := prepareHost(scheme, c.config.Host)
	if c.config.Port != "" {
		details += ":" + c.config.Port
	}
	port, _ := strconv.Atoi(c.config.Port)
	return component.Description{
		Name:    "HTTP Client",
		Type:    "httpclient",
		Details: details,
		Port:    port,
	}
}
