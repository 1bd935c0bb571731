package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, Options{FollowLocation: false}, DefaultOptions())
}

func TestOptionsClone(t *testing.T) {
	o := Options{UserPwd: "u:p"}
	c := o.Clone()
	c[UserPwd] = "x:y"
	assert.Equal(t, "u:p", o[UserPwd])
}

func TestOptionsParse(t *testing.T) {
	s, err := Options{
		FollowLocation: true,
		UserPwd:        "elastic:changeme",
		SSLVerifyPeer:  false,
		SSLVerifyHost:  true,
		Timeout:        5 * time.Second,
		CAFile:         "/etc/ca.pem",
	}.parse()
	require.NoError(t, err)

	assert.True(t, s.followLocation)
	assert.Equal(t, "elastic:changeme", s.userPwd)
	assert.False(t, s.verifyPeer)
	assert.True(t, s.verifyHost)
	assert.Equal(t, 5*time.Second, s.timeout)
	assert.Equal(t, "/etc/ca.pem", s.caFile)
}

func TestOptionsParseDefaults(t *testing.T) {
	s, err := Options{}.parse()
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)
	assert.Equal(t, DefaultTimeout, s.timeout)
	assert.True(t, s.verifyPeer)
	assert.True(t, s.verifyHost)
}

func TestOptionsParseErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"bool as string", Options{FollowLocation: "yes"}, "invalid value type string"},
		{"timeout as int", Options{Timeout: 30}, "invalid value type int"},
		{"negative timeout", Options{Timeout: -time.Second}, "must be positive"},
		{"credentials as bytes", Options{UserPwd: []byte("u:p")}, "invalid value type []uint8"},
		{"unknown key", Options{Option("proxy"): "http://p"}, `unsupported option "proxy"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseHeaderLines(t *testing.T) {
	p, err := parseHeaderLines([]string{
		"Accept: application/json",
		"X-Multi: a",
		"x-multi: b",
		"Content-Length: 42",
		"Host: search.internal",
		"X-Colon: a:b:c",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", p.header.Get("Accept"))
	assert.Equal(t, []string{"a", "b"}, p.header.Values("X-Multi"))
	assert.Equal(t, "a:b:c", p.header.Get("X-Colon"))
	assert.Empty(t, p.header.Get("Content-Length"))
	assert.Equal(t, int64(42), p.contentLength)
	assert.Equal(t, "search.internal", p.host)
}

func TestParseHeaderLinesErrors(t *testing.T) {
	for _, line := range []string{
		"no colon here",
		": empty name",
		"Bad Name: value",
		"Content-Length: abc",
		"Content-Length: -1",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := parseHeaderLines([]string{line})
			assert.Error(t, err)
		})
	}
}
