package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/moul/http2curl"
	"github.com/rs/zerolog"

	"github.com/kbukum/puzzle/logger"
	"github.com/kbukum/puzzle/security"
	"github.com/kbukum/puzzle/version"
)

// HTTPHandle is a Handle backed by net/http.
// It is not safe for concurrent use.
type HTTPHandle struct {
	method  string
	url     string
	body    string
	headers parsedHeaders

	settings settings
	// tlsKey identifies the TLS settings the cached transport was built for.
	tlsKey    string
	transport *http.Transport

	status int
	closed bool
	log    *logger.Logger
}

var _ Handle = (*HTTPHandle)(nil)

// HTTPOption configures an HTTPHandle.
type HTTPOption func(*HTTPHandle)

// WithLogger sets the logger used for request dumps.
func WithLogger(l *logger.Logger) HTTPOption {
	return func(h *HTTPHandle) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHTTPHandle creates a handle with default settings.
func NewHTTPHandle(opts ...HTTPOption) *HTTPHandle {
	h := &HTTPHandle{
		method:   http.MethodGet,
		headers:  parsedHeaders{header: make(http.Header), contentLength: -1},
		settings: defaultSettings(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.WithComponent("transport")
	return h
}

// NewHTTPFactory returns a Factory producing HTTPHandles with opts.
func NewHTTPFactory(opts ...HTTPOption) Factory {
	return func() (Handle, error) {
		return NewHTTPHandle(opts...), nil
	}
}

// SetURL sets the absolute URL of the next request.
func (h *HTTPHandle) SetURL(url string) { h.url = url }

// SetMethod sets the upper-case HTTP method of the next request.
func (h *HTTPHandle) SetMethod(method string) { h.method = method }

// SetBody sets the request body. An empty body sends none.
func (h *HTTPHandle) SetBody(body string) { h.body = body }

// SetOptions replaces all settings with opts over the defaults.
func (h *HTTPHandle) SetOptions(opts Options) error {
	s, err := opts.parse()
	if err != nil {
		return err
	}
	h.settings = s
	return nil
}

// SetHeaders replaces the header list. Content-Length lines are validated
// but not sent; the length is taken from the body.
func (h *HTTPHandle) SetHeaders(lines []string) error {
	p, err := parseHeaderLines(lines)
	if err != nil {
		return err
	}
	h.headers = p
	return nil
}

// StatusCode returns the status of the last response, 0 if none.
func (h *HTTPHandle) StatusCode() int { return h.status }

// Execute sends the request and returns the response body.
func (h *HTTPHandle) Execute(ctx context.Context) ([]byte, error) {
	h.status = 0
	if h.closed {
		return nil, ErrClosed
	}

	req, err := h.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	h.dump(ctx)

	client, err := h.client()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	h.status = resp.StatusCode

	if h.log.Enabled(zerolog.DebugLevel) {
		h.log.WithContext(ctx).Debug("response received", logger.MergeWithDuration(logger.Fields(
			logger.FieldStatus, resp.StatusCode,
			"bytes", len(body),
		), time.Since(start)))
	}
	return body, nil
}

// Close releases idle connections. Execute fails afterwards.
func (h *HTTPHandle) Close() error {
	if h.transport != nil {
		h.transport.CloseIdleConnections()
		h.transport = nil
	}
	h.closed = true
	return nil
}

func (h *HTTPHandle) newRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if h.body != "" {
		body = strings.NewReader(h.body)
	}
	req, err := http.NewRequestWithContext(ctx, h.method, h.url, body)
	if err != nil {
		return nil, err
	}

	for name, values := range h.headers.header {
		req.Header[name] = append([]string(nil), values...)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", version.UserAgent())
	}
	if h.headers.host != "" {
		req.Host = h.headers.host
	}
	if user, pass, ok := h.credentials(); ok {
		req.SetBasicAuth(user, pass)
	}
	return req, nil
}

func (h *HTTPHandle) credentials() (string, string, bool) {
	if h.settings.userPwd == "" {
		return "", "", false
	}
	user, pass, _ := strings.Cut(h.settings.userPwd, ":")
	return user, pass, true
}

// dump logs the request as a curl command with credentials masked.
func (h *HTTPHandle) dump(ctx context.Context) {
	if !h.log.Enabled(zerolog.DebugLevel) {
		return
	}
	req, err := h.newRequest(ctx)
	if err != nil {
		return
	}
	if auth := req.Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", logger.MaskSecret(auth, len("Basic ")))
	}
	cmd, err := http2curl.GetCurlCommand(req)
	if err != nil {
		return
	}
	h.log.WithContext(ctx).Debug("sending request", logger.Fields(
		logger.FieldMethod, h.method,
		logger.FieldURL, h.url,
		logger.FieldCurl, cmd.String(),
	))
}

func (h *HTTPHandle) client() (*http.Client, error) {
	tr, err := h.roundTripper()
	if err != nil {
		return nil, err
	}
	c := &http.Client{Transport: tr, Timeout: h.settings.timeout}
	if !h.settings.followLocation {
		c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return c, nil
}

// roundTripper returns the cached transport, rebuilding it when the TLS
// settings change.
func (h *HTTPHandle) roundTripper() (*http.Transport, error) {
	tc := &security.TLSConfig{
		SkipPeerVerify: !h.settings.verifyPeer,
		SkipHostVerify: !h.settings.verifyHost,
		CAFile:         h.settings.caFile,
	}
	key := fmt.Sprintf("%t|%t|%s", tc.SkipPeerVerify, tc.SkipHostVerify, tc.CAFile)
	if h.transport != nil && h.tlsKey == key {
		return h.transport, nil
	}

	base, err := tc.Build()
	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = base
	if tc.PartialVerify() {
		dialer := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}
		tr.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, _, err := net.SplitHostPort(addr)
			if err != nil {
				host = addr
			}
			td := &tls.Dialer{NetDialer: dialer, Config: tc.ForHost(base, host)}
			return td.DialContext(ctx, network, addr)
		}
	}

	if h.transport != nil {
		h.transport.CloseIdleConnections()
	}
	h.transport = tr
	h.tlsKey = key
	return tr, nil
}
