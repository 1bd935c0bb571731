package transport

import (
	"context"
	"errors"
)

// ErrClosed is returned by Execute after Close.
var ErrClosed = errors.New("transport: handle closed")

// Handle is one reusable request slot. Setters replace prior values.
// A non-nil error from Execute is the handle's error state; StatusCode is
// only meaningful when it is nil.
type Handle interface {
	SetURL(url string)
	SetMethod(method string)
	SetBody(body string)
	SetOptions(opts Options) error
	// SetHeaders replaces the header list with raw "Name: value" lines.
	SetHeaders(lines []string) error
	Execute(ctx context.Context) ([]byte, error)
	StatusCode() int
	Close() error
}

// Factory creates a new Handle.
type Factory func() (Handle, error)
