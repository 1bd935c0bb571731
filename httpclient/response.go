package httpclient

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is a successful (status below 400) response.
type Response struct {
	Status int
	// Data is the deserialized body, or the raw body as a string when it
	// could not be decoded.
	Data any
	Raw  []byte
}

// Get queries the raw JSON body with a gjson path such as "hits.total.value".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// Decode unmarshals the raw JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Raw) == 0 {
		return fmt.Errorf("httpclient: empty response body")
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("httpclient: decoding response body: %w", err)
	}
	return nil
}

// String returns the raw body.
func (r *Response) String() string {
	return string(r.Raw)
}
