package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Local errors, raised before anything is sent.
const (
	// ErrCodeConfiguration indicates a missing or invalid host, or a non-numeric port.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInvalidRequestMethod indicates an unrecognized verb.
	ErrCodeInvalidRequestMethod ErrorCode = "INVALID_REQUEST_METHOD"
	// ErrCodeInvalidRequest indicates a request that cannot be sent as given,
	// e.g. a PUT without a body.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Transport errors.
const (
	// ErrCodeTransport indicates the transport rejected its options or headers.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeConnection indicates a low-level failure (DNS, connect, TLS, closed handle).
	ErrCodeConnection ErrorCode = "CONNECTION_ERROR"
)

// Remote errors, classified from the response status.
const (
	// ErrCodeClient indicates a 4xx response.
	ErrCodeClient ErrorCode = "CLIENT_ERROR"
	// ErrCodeServer indicates a 5xx response.
	ErrCodeServer ErrorCode = "SERVER_ERROR"
)

// String returns the code as a string.
func (c ErrorCode) String() string { return string(c) }

// IsRemote reports whether the code was derived from a response status.
func (c ErrorCode) IsRemote() bool {
	return c == ErrCodeClient || c == ErrCodeServer
}
