package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/puzzle/logger"
	"github.com/kbukum/puzzle/security/tlstest"
)

type seenRequest struct {
	method        string
	path          string
	query         string
	host          string
	body          string
	contentLength int64
	header        http.Header
}

func recordingServer(t *testing.T, status int, respBody string) (*httptest.Server, *seenRequest) {
	t.Helper()
	seen := &seenRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*seen = seenRequest{
			method:        r.Method,
			path:          r.URL.Path,
			query:         r.URL.RawQuery,
			host:          r.Host,
			body:          string(b),
			contentLength: r.ContentLength,
			header:        r.Header.Clone(),
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestHTTPHandleExecute(t *testing.T) {
	srv, seen := recordingServer(t, http.StatusCreated, `{"result":"created"}`)

	h := NewHTTPHandle()
	defer h.Close()
	h.SetMethod(http.MethodPut)
	h.SetURL(srv.URL + "/index/_doc/1?refresh=true&&pretty=1")
	h.SetBody(`{"name":"puzzle"}`)
	require.NoError(t, h.SetOptions(Options{UserPwd: "elastic:changeme"}))
	require.NoError(t, h.SetHeaders([]string{
		"Content-Type: application/json",
		"Content-Length: 17",
		"Host: search.internal",
	}))

	body, err := h.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, `{"result":"created"}`, string(body))
	assert.Equal(t, http.StatusCreated, h.StatusCode())

	assert.Equal(t, http.MethodPut, seen.method)
	assert.Equal(t, "/index/_doc/1", seen.path)
	assert.Equal(t, "refresh=true&&pretty=1", seen.query)
	assert.Equal(t, "search.internal", seen.host)
	assert.Equal(t, `{"name":"puzzle"}`, seen.body)
	assert.Equal(t, int64(17), seen.contentLength)
	assert.Equal(t, "application/json", seen.header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(seen.header.Get("User-Agent"), "puzzle/"))

	user, pass, ok := (&http.Request{Header: seen.header}).BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "elastic", user)
	assert.Equal(t, "changeme", pass)
}

func TestHTTPHandleHeadersReplaced(t *testing.T) {
	srv, seen := recordingServer(t, http.StatusOK, "")

	h := NewHTTPHandle()
	defer h.Close()
	h.SetURL(srv.URL)
	require.NoError(t, h.SetHeaders([]string{"X-First: 1"}))
	require.NoError(t, h.SetHeaders([]string{"X-Second: 2"}))

	_, err := h.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seen.header.Get("X-First"))
	assert.Equal(t, "2", seen.header.Get("X-Second"))
}

func TestHTTPHandleErrorStatusIsNotAnError(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusForbidden, `{"error":"forbidden"}`)

	h := NewHTTPHandle()
	defer h.Close()
	h.SetURL(srv.URL)

	body, err := h.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, h.StatusCode())
	assert.Equal(t, `{"error":"forbidden"}`, string(body))
}

func TestHTTPHandleRejectsBadInput(t *testing.T) {
	h := NewHTTPHandle()
	defer h.Close()

	assert.Error(t, h.SetHeaders([]string{"garbage"}))
	assert.Error(t, h.SetOptions(Options{SSLVerifyPeer: 1}))
}

func TestHTTPHandleRedirects(t *testing.T) {
	target, _ := recordingServer(t, http.StatusOK, "landed")
	redirect := httptest.NewServer(http.RedirectHandler(target.URL, http.StatusFound))
	t.Cleanup(redirect.Close)

	tests := []struct {
		name   string
		follow bool
		status int
		body   string
	}{
		{"not followed by default", false, http.StatusFound, ""},
		{"followed", true, http.StatusOK, "landed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHTTPHandle()
			defer h.Close()
			h.SetURL(redirect.URL)
			require.NoError(t, h.SetOptions(Options{FollowLocation: tc.follow}))

			body, err := h.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.status, h.StatusCode())
			if tc.body != "" {
				assert.Equal(t, tc.body, string(body))
			}
		})
	}
}

func TestHTTPHandleTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	h := NewHTTPHandle()
	defer h.Close()
	h.SetURL(srv.URL)
	require.NoError(t, h.SetOptions(Options{Timeout: 50 * time.Millisecond}))

	_, err := h.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, h.StatusCode())
}

func TestHTTPHandleConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	h := NewHTTPHandle()
	defer h.Close()
	h.SetURL(url)

	_, err := h.Execute(context.Background())
	assert.Error(t, err)
}

func TestHTTPHandleClosed(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK, "ok")

	h := NewHTTPHandle()
	h.SetURL(srv.URL)
	require.NoError(t, h.Close())

	_, err := h.Execute(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestHTTPHandleCurlDump(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK, "{}")

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, &buf, "test")

	h := NewHTTPHandle(WithLogger(log))
	defer h.Close()
	h.SetMethod(http.MethodPost)
	h.SetURL(srv.URL + "/_search")
	h.SetBody(`{"query":{"match_all":{}}}`)
	require.NoError(t, h.SetOptions(Options{UserPwd: "elastic:s3cret"}))

	_, err := h.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "curl -X")
	assert.Contains(t, out, "match_all")
	assert.Contains(t, out, `"component":"transport"`)
	assert.NotContains(t, out, base64.StdEncoding.EncodeToString([]byte("elastic:s3cret")))
	assert.Contains(t, out, "Basic ***")
}

func TestHTTPHandleTLSVerification(t *testing.T) {
	loopback := tlstest.GenerateTLSCerts(t)
	otherName := tlstest.GenerateTLSCerts(t, "search.internal")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "secure")
	})
	goodSrv := tlstest.NewTLSServer(t, loopback, handler)
	wrongNameSrv := tlstest.NewTLSServer(t, otherName, handler)

	tests := []struct {
		name    string
		url     string
		opts    Options
		wantErr string
	}{
		{"verify all with CA", goodSrv.URL, Options{CAFile: loopback.CAFile}, ""},
		{"verify all without CA", goodSrv.URL, Options{}, "certificate"},
		{"no verification", wrongNameSrv.URL, Options{SSLVerifyPeer: false, SSLVerifyHost: false}, ""},
		{"host only, matching name", goodSrv.URL, Options{SSLVerifyPeer: false, SSLVerifyHost: true}, ""},
		{"host only, wrong name", wrongNameSrv.URL, Options{SSLVerifyPeer: false, SSLVerifyHost: true}, "verify host"},
		{"peer only, wrong name", wrongNameSrv.URL, Options{SSLVerifyPeer: true, SSLVerifyHost: false, CAFile: otherName.CAFile}, ""},
		{"peer only, unknown CA", goodSrv.URL, Options{SSLVerifyPeer: true, SSLVerifyHost: false}, "verify peer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHTTPHandle()
			defer h.Close()
			h.SetURL(tc.url)
			require.NoError(t, h.SetOptions(tc.opts))

			body, err := h.Execute(context.Background())
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "secure", string(body))
			assert.Equal(t, http.StatusOK, h.StatusCode())
		})
	}
}

func TestHTTPHandleTLSSettingsChange(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t, "search.internal")
	srv := tlstest.NewTLSServer(t, certs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h := NewHTTPHandle()
	defer h.Close()
	h.SetURL(srv.URL)

	require.NoError(t, h.SetOptions(Options{SSLVerifyPeer: false, SSLVerifyHost: false}))
	_, err := h.Execute(context.Background())
	require.NoError(t, err)

	require.NoError(t, h.SetOptions(Options{SSLVerifyPeer: false, SSLVerifyHost: true}))
	_, err = h.Execute(context.Background())
	require.Error(t, err)
}
