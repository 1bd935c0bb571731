package transport

import (
	"fmt"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// parsedHeaders is the result of parsing raw header lines.
type parsedHeaders struct {
	header http.Header
	host   string
	// contentLength is the last Content-Length line, -1 if none.
	contentLength int64
}

func parseHeaderLines(lines []string) (parsedHeaders, error) {
	p := parsedHeaders{header: make(http.Header), contentLength: -1}
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return parsedHeaders{}, fmt.Errorf("malformed header line %q: missing ':'", line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			return parsedHeaders{}, fmt.Errorf("malformed header line %q: invalid name", line)
		}

		switch textproto.CanonicalMIMEHeaderKey(name) {
		case "Content-Length":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n < 0 {
				return parsedHeaders{}, fmt.Errorf("invalid Content-Length %q", value)
			}
			p.contentLength = n
		case "Host":
			p.host = value
		default:
			p.header.Add(name, value)
		}
	}
	return p, nil
}
