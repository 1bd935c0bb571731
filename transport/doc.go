// Package transport executes a single prepared HTTP request.
//
// A Handle is configured piecewise (method, URL, body, options, raw header
// lines) and then executed. HTTPHandle implements it on net/http:
//
//	h := transport.NewHTTPHandle()
//	h.SetMethod("GET")
//	h.SetURL("http://127.0.0.1:9200/_cluster/health")
//	_ = h.SetOptions(transport.Options{transport.Timeout: 5 * time.Second})
//	body, err := h.Execute(ctx)
//	status := h.StatusCode()
//
// Option values are typed. SetOptions rejects unknown keys and values of the
// wrong type.
package transport
