package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/puzzle/component"
	"github.com/kbukum/puzzle/errors"
	"github.com/kbukum/puzzle/httpclient"
	"github.com/kbukum/puzzle/logger"
	"github.com/kbukum/puzzle/observability"
	"github.com/kbukum/puzzle/version"
)

func newRequestCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "request <verb> <uri>",
		Short: "Send a request with any verb",
		Example: `  puzzle request GET /_cat/indices -q v=true
  puzzle request PUT /idx -d @mapping.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, f, args[0], args[1])
		},
	}
}

func newVerbCmd(f *flags, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <uri>",
		Short: "Send a " + strings.ToUpper(verb) + " request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, f, verb, args[0])
		},
	}
}

func runRequest(cmd *cobra.Command, f *flags, verb, uri string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Logging, cfg.Name)

	params, err := parseParams(f.params)
	if err != nil {
		return err
	}
	body, err := readBody(cmd, f.data)
	if err != nil {
		return err
	}

	shutdown, err := observability.Setup(ctx, cfg.Telemetry, cfg.Name, version.Get().Short(), cfg.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()

	opts := []httpclient.Option{httpclient.WithLogger(log)}
	if cfg.Telemetry.Enabled() {
		m, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
		if err != nil {
			return err
		}
		opts = append(opts, httpclient.WithMetrics(m))
	}

	client := httpclient.NewComponent(cfg.Client, opts...)
	registry := component.NewRegistry()
	if err := registry.Register(client); err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		_ = registry.StopAll(ctx)
		return err
	}
	defer func() { _ = registry.StopAll(context.WithoutCancel(ctx)) }()

	opaqueID := f.opaqueID
	if opaqueID == "" {
		opaqueID = uuid.NewString()
	}
	client.Client().SetHTTPHeader("X-Opaque-Id: " + opaqueID)

	resp, err := client.Client().PerformRequest(ctx, verb, uri, params, body)
	out := newPrinter(cmd.OutOrStdout())
	if err != nil {
		if e, ok := errors.As(err); ok && e.Code.IsRemote() {
			out.status(e.StatusCode)
			out.body(e.Body, f.path)
		}
		return err
	}
	out.status(resp.Status)
	out.body(resp.Raw, f.path)
	return nil
}

// parseParams turns key=value flags into ordered Params.
func parseParams(raw []string) (httpclient.Params, error) {
	var params httpclient.Params
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", kv)
		}
		params.Add(key, value)
	}
	return params, nil
}

// readBody returns nil when no body was given.
func readBody(cmd *cobra.Command, data string) (any, error) {
	if !cmd.Flags().Changed("data") {
		return nil, nil
	}
	if path, ok := strings.CutPrefix(data, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return string(b), nil
	}
	return data, nil
}
