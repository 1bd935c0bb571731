package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// status prints "HTTP <code> <text>" colored by class.
func (p *printer) status(code int) {
	c := statusColor(code)
	c.Fprintf(p.w, "HTTP %d %s\n", code, http.StatusText(code))
}

func statusColor(code int) *color.Color {
	switch {
	case code >= 500:
		return color.New(color.FgRed, color.Bold)
	case code >= 400:
		return color.New(color.FgYellow, color.Bold)
	case code >= 300:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}

// body prints the raw body, pretty-printed when it is JSON, or only the
// value at path when path is set.
func (p *printer) body(raw []byte, path string) {
	if path != "" {
		fmt.Fprintln(p.w, gjson.GetBytes(raw, path).String())
		return
	}
	if len(raw) == 0 {
		return
	}
	if gjson.ValidBytes(raw) {
		fmt.Fprint(p.w, gjson.GetBytes(raw, "@pretty").Raw)
		return
	}
	fmt.Fprintln(p.w, string(raw))
}
