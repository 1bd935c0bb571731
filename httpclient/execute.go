package httpclient

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/puzzle/errors"
	"github.com/kbukum/puzzle/logger"
	"github.com/kbukum/puzzle/observability"
)

const spanExecute = "httpclient.execute"

// execute runs r on the handle and classifies the result.
func (c *Client) execute(ctx context.Context, r request) (*Response, error) {
	method := strings.ToUpper(r.verb)

	ctx, span := observability.StartSpan(ctx, spanExecute,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(observability.AttrHTTPMethod, method)),
	)
	defer span.End()

	start := time.Now()
	url, resp, err := c.send(ctx, method, r)
	c.observe(ctx, span, method, url, resp, err, time.Since(start))
	return resp, err
}

func (c *Client) send(ctx context.Context, method string, r request) (string, *Response, error) {
	c.handle.SetMethod(method)

	url, err := c.buildURL(r.uri, r.params)
	if err != nil {
		return "", nil, err
	}
	c.handle.SetURL(url)

	var body string
	if r.body != nil {
		body = *r.body
	}
	c.handle.SetBody(body)

	if err := c.handle.SetOptions(c.Options()); err != nil {
		return url, nil, errors.Transport("error setting transport request options", err)
	}
	if err := c.handle.SetHeaders(c.Headers()); err != nil {
		return url, nil, errors.Transport("error setting transport header options", err)
	}

	raw, err := c.handle.Execute(ctx)
	if err != nil {
		return url, nil, errors.Connection(err)
	}

	status := c.handle.StatusCode()
	data := c.serializer.Deserialize(string(raw))

	switch {
	case status >= 400 && status < 500:
		return url, nil, errors.ClientError(status, data, raw)
	case status >= 500:
		return url, nil, errors.ServerError(status, data, raw)
	}
	return url, &Response{Status: status, Data: data, Raw: raw}, nil
}

// observe records the span attributes, metrics and debug log for one request.
func (c *Client) observe(ctx context.Context, span trace.Span, method, url string, resp *Response, err error, elapsed time.Duration) {
	status := errors.StatusOf(err)
	if resp != nil {
		status = resp.Status
	}

	if url != "" {
		span.SetAttributes(attribute.String(observability.AttrURL, url))
	}
	if status != 0 {
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
	}

	outcome := observability.OutcomeSuccess
	fields := logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, url,
		logger.FieldStatus, status,
	)
	if err != nil {
		outcome = errors.CodeOf(err).String()
		span.SetAttributes(attribute.String(observability.AttrErrorCode, outcome))
		observability.SetSpanError(span, err)
		fields[logger.FieldErrorCode] = outcome
		fields[logger.FieldError] = err.Error()
	}
	c.metrics.RecordRequest(ctx, method, outcome, elapsed)

	c.log.WithContext(ctx).Debug("request completed", logger.MergeWithDuration(fields, elapsed))
}
