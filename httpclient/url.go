package httpclient

import (
	"strings"

	"github.com/kbukum/puzzle/errors"
)

const querySeparator = "&&"

// buildURL returns the host string followed by uri and the query string.
func (c *Client) buildURL(uri string, params Params) (string, error) {
	hostString, err := c.buildHostString()
	if err != nil {
		return "", err
	}
	return joinURL(hostString, uri, params), nil
}

// buildHostString returns scheme, host and the optional ":port".
func (c *Client) buildHostString() (string, error) {
	if c.host == "" {
		return "", errors.Configuration("no host was set")
	}
	s := prepareHost(c.scheme, c.host)
	if c.port != "" {
		s += ":" + c.port
	}
	return s, nil
}

func joinURL(hostString, uri string, params Params) string {
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return hostString + uri + buildQueryString(params)
}

// prepareHost replaces any scheme on host with scheme and drops one
// trailing slash.
func prepareHost(scheme Scheme, host string) string {
	host = stripScheme(host)
	host = strings.TrimSuffix(host, "/")
	return string(scheme) + host
}

func stripScheme(host string) string {
	for _, prefix := range []Scheme{SchemeSecure, SchemePlain} {
		if strings.HasPrefix(host, string(prefix)) {
			return host[len(prefix):]
		}
	}
	return host
}

// buildQueryString renders params as "?k=v&&k2=v2". Values are not encoded.
func buildQueryString(params Params) string {
	if len(params) == 0 {
		return ""
	}
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + p.Value
	}
	return "?" + strings.Join(pairs, querySeparator)
}
