// Package httpclient issues requests to search and index style HTTP
// backends such as Elasticsearch.
//
// A Client holds the connection settings (host, port, scheme, credentials,
// raw header lines and transport options), serializes request bodies,
// builds the request URL, executes it through a transport.Handle and
// classifies the response by status code.
//
// # Basic Usage
//
//	c, err := httpclient.New("127.0.0.1", "9200")
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.SetAuthentication("elastic", "changeme")
//	c.EnableSSL(true)
//
//	resp, err := c.Get(ctx, "/_cluster/health", httpclient.NewParams("pretty", "true"), nil)
//	switch {
//	case errors.IsClientError(err):
//	    // 4xx
//	case errors.IsServerError(err):
//	    // 5xx
//	case err != nil:
//	    // configuration, request or connection failure
//	}
//	fmt.Println(resp.Get("status").String())
//
// # Quirks
//
// Query pairs are joined with "&&" and are not percent-encoded. PUT and
// PATCH append a Content-Length header line on every call; the lines
// accumulate until Reset. EnableSSL(true) verifies only the host name, not
// the certificate chain.
package httpclient
