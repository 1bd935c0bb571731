package httpclient

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"github.com/kbukum/puzzle/errors"
)

// request is a dispatched request. A nil body means none was given.
type request struct {
	verb   string
	uri    string
	params Params
	body   *string
}

type verbHandler func(c *Client, ctx context.Context, r request) (*Response, error)

var verbHandlers = map[string]verbHandler{
	"get":    (*Client).sendRequest,
	"head":   (*Client).sendRequest,
	"delete": (*Client).sendRequest,
	"post":   (*Client).sendRequest,
	"put":    (*Client).sendWithLength,
	"patch":  (*Client).sendWithLength,
}

// PerformRequest serializes body, dispatches on verb (case-insensitive) and
// executes the request. 4xx and 5xx responses are returned as errors. A nil
// body, including a typed nil such as a nil map, means no body.
func (c *Client) PerformRequest(ctx context.Context, verb, uri string, params Params, body any) (*Response, error) {
	r := request{verb: verb, uri: uri, params: params}
	if !isNil(body) {
		s, err := c.serializer.Serialize(body)
		if err != nil {
			return nil, errors.InvalidRequest("cannot serialize request body: %v", err).WithCause(err)
		}
		r.body = &s
	}

	handler, ok := verbHandlers[strings.ToLower(verb)]
	if !ok {
		return nil, errors.InvalidRequestMethod(verb)
	}
	return handler(c, ctx, r)
}

func (c *Client) sendRequest(ctx context.Context, r request) (*Response, error) {
	return c.execute(ctx, r)
}

// sendWithLength requires a body and appends its Content-Length line.
func (c *Client) sendWithLength(ctx context.Context, r request) (*Response, error) {
	if r.body == nil {
		return nil, errors.InvalidRequest("body is required for '%s' requests", r.verb)
	}
	c.SetHTTPHeader("Content-Length: " + strconv.Itoa(len(*r.body)))
	return c.execute(ctx, r)
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "get", uri, params, body)
}

// Put sends a PUT request. body is required.
func (c *Client) Put(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "put", uri, params, body)
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "post", uri, params, body)
}

// Patch sends a PATCH request. body is required.
func (c *Client) Patch(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "patch", uri, params, body)
}

// Head sends a HEAD request.
func (c *Client) Head(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "head", uri, params, body)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, uri string, params Params, body any) (*Response, error) {
	return c.PerformRequest(ctx, "delete", uri, params, body)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
