package httpclient

import (
	"strconv"

	"github.com/kbukum/puzzle/errors"
	"github.com/kbukum/puzzle/logger"
	"github.com/kbukum/puzzle/observability"
	"github.com/kbukum/puzzle/serializer"
	"github.com/kbukum/puzzle/transport"
)

// Scheme is the URL prefix selecting plain or secured connections.
type Scheme string

const (
	SchemePlain  Scheme = "http://"
	SchemeSecure Scheme = "https://"
)

// Client sends requests to a single host. It holds one transport handle and
// is not safe for concurrent use.
type Client struct {
	host   string
	port   string
	scheme Scheme

	options transport.Options
	headers []string

	serializer serializer.Serializer
	// initialSerializer is restored by Reset.
	initialSerializer serializer.Serializer

	handle  transport.Handle
	factory transport.Factory

	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Client at construction.
type Option func(*Client)

// WithSerializer sets the body serializer. Default is JSON.
func WithSerializer(s serializer.Serializer) Option {
	return func(c *Client) {
		if s != nil {
			c.serializer = s
		}
	}
}

// WithHandleFactory sets the factory for transport handles.
func WithHandleFactory(f transport.Factory) Option {
	return func(c *Client) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithLogger sets the logger for the client and its default transport.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records request metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client for host and an optional port. A non-empty port must
// be numeric. An empty host is accepted here and rejected when a request is
// built.
func New(host, port string, opts ...Option) (*Client, error) {
	if err := validatePort(port); err != nil {
		return nil, err
	}

	c := &Client{
		host:   host,
		port:   port,
		scheme: SchemePlain,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.GetGlobalLogger()
	}
	if c.serializer == nil {
		c.serializer = serializer.Default()
	}
	if c.factory == nil {
		c.factory = transport.NewHTTPFactory(transport.WithLogger(c.log))
	}
	c.log = c.log.WithComponent("httpclient")
	c.initialSerializer = c.serializer

	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init opens a fresh handle and restores default state.
func (c *Client) init() error {
	h, err := c.factory()
	if err != nil {
		return errors.Transport("error creating transport handle", err)
	}
	c.handle = h
	c.options = transport.DefaultOptions()
	c.headers = nil
	c.scheme = SchemePlain
	c.serializer = c.initialSerializer
	return nil
}

func validatePort(port string) error {
	if port == "" {
		return nil
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return errors.Configuration("Port '%s' is not numeric", port)
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return errors.Configuration("Port '%s' is out of range", port)
	}
	return nil
}

// SetAuthentication sends basic credentials with every request.
func (c *Client) SetAuthentication(username, password string) {
	c.options[transport.UserPwd] = username + ":" + password
}

// EnableSSL switches to https. With strict false neither the certificate
// chain nor the host name is verified. With strict true only the host name
// is verified.
func (c *Client) EnableSSL(strict bool) {
	c.scheme = SchemeSecure
	c.options[transport.SSLVerifyPeer] = false
	c.options[transport.SSLVerifyHost] = strict
}

// DisableSSL switches back to plain http. Verification options are kept.
func (c *Client) DisableSSL() {
	c.scheme = SchemePlain
}

// SetHTTPHeader appends a raw "Name: value" line. Lines are not deduplicated.
func (c *Client) SetHTTPHeader(line string) {
	c.headers = append(c.headers, line)
}

// SetSerializer replaces the body serializer until the next Reset.
func (c *Client) SetSerializer(s serializer.Serializer) {
	if s == nil {
		s = c.initialSerializer
	}
	c.serializer = s
}

func (c *Client) setOption(key transport.Option, value any) {
	c.options[key] = value
}

// StatusCode returns the status of the last response, 0 if none.
func (c *Client) StatusCode() int {
	return c.handle.StatusCode()
}

// Reset closes the handle, opens a new one and restores options, headers,
// scheme and serializer to their initial values. Host and port are kept.
func (c *Client) Reset() error {
	if err := c.handle.Close(); err != nil {
		return errors.Transport("error closing transport handle", err)
	}
	return c.init()
}

// Close releases the handle. Later requests fail with a connection error.
func (c *Client) Close() error {
	return c.handle.Close()
}

// Host returns the host as given.
func (c *Client) Host() string { return c.host }

// Port returns the port as given.
func (c *Client) Port() string { return c.port }

// Scheme returns the current scheme.
func (c *Client) Scheme() Scheme { return c.scheme }

// Serializer returns the current serializer.
func (c *Client) Serializer() serializer.Serializer { return c.serializer }

// Options returns a copy of the transport options.
func (c *Client) Options() transport.Options { return c.options.Clone() }

// Headers returns a copy of the header lines.
func (c *Client) Headers() []string {
	if c.headers == nil {
		return nil
	}
	return append([]string(nil), c.headers...)
}
