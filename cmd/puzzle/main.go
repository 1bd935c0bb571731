// Command puzzle sends a single request to a search or index backend and
// prints the classified response.
//
//	puzzle get /_cluster/health --host 127.0.0.1 --port 9200
//	puzzle put /idx/_doc/1 -d '{"title":"go"}' --user elastic:changeme --ssl --strict
//	puzzle request GET /_search -q q=title:go -q size=5 --path hits.total.value
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/puzzle/errors"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return ExitError
	}
	return ExitSuccess
}

func printError(w io.Writer, err error) {
	if e, ok := errors.As(err); ok {
		fmt.Fprintf(w, "error [%s]: %s\n", e.Code, e.Message)
		if e.Cause != nil && e.Code != errors.ErrCodeConnection {
			fmt.Fprintf(w, "  cause: %v\n", e.Cause)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
