package httpclient

import (
	"context"
	"testing"

	"github.com/kbukum/puzzle/transport"
)

// fakeHandle records what the client configured and replays a canned result.
type fakeHandle struct {
	method  string
	url     string
	body    string
	options transport.Options
	headers []string

	status    int
	respBody  string
	execErr   error
	optErr    error
	headerErr error

	executed int
	closed   bool
	// headersAtExecute is the header list seen by the last Execute.
	headersAtExecute []string
}

func (f *fakeHandle) SetURL(url string)       { f.url = url }
func (f *fakeHandle) SetMethod(method string) { f.method = method }
func (f *fakeHandle) SetBody(body string)     { f.body = body }

func (f *fakeHandle) SetOptions(opts transport.Options) error {
	if f.optErr != nil {
		return f.optErr
	}
	f.options = opts
	return nil
}

func (f *fakeHandle) SetHeaders(lines []string) error {
	if f.headerErr != nil {
		return f.headerErr
	}
	f.headers = lines
	return nil
}

func (f *fakeHandle) Execute(context.Context) ([]byte, error) {
	if f.closed {
		return nil, transport.ErrClosed
	}
	f.executed++
	f.headersAtExecute = append([]string(nil), f.headers...)
	if f.execErr != nil {
		return nil, f.execErr
	}
	return []byte(f.respBody), nil
}

func (f *fakeHandle) StatusCode() int { return f.status }

func (f *fakeHandle) Close() error {
	f.closed = true
	return nil
}

// fakeFactory hands out fresh fakeHandles and remembers them.
type fakeFactory struct {
	handles []*fakeHandle
	// prepare configures each new handle.
	prepare func(*fakeHandle)
}

func (ff *fakeFactory) New() (transport.Handle, error) {
	h := &fakeHandle{status: 200}
	if ff.prepare != nil {
		ff.prepare(h)
	}
	ff.handles = append(ff.handles, h)
	return h, nil
}

func (ff *fakeFactory) last() *fakeHandle {
	return ff.handles[len(ff.handles)-1]
}

// newFakeClient returns a client on host/port backed by a single fake handle.
func newFakeClient(t testing.TB, host, port string, prepare func(*fakeHandle)) (*Client, *fakeFactory) {
	t.Helper()
	ff := &fakeFactory{prepare: prepare}
	c, err := New(host, port, WithHandleFactory(ff.New))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, ff
}
