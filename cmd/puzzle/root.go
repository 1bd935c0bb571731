package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kbukum/puzzle/config"
	"github.com/kbukum/puzzle/httpclient"
	"github.com/kbukum/puzzle/observability"
)

const serviceName = "puzzle"

// cliConfig is the layout of puzzle.yml.
type cliConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Client               httpclient.Config    `yaml:"client" mapstructure:"client"`
	Telemetry            observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// flags holds the persistent flags shared by the request commands.
type flags struct {
	configFile string
	host       string
	port       string
	ssl        bool
	strict     bool
	user       string
	headers    []string
	params     []string
	data       string
	path       string
	opaqueID   string
	timeout    time.Duration
	noColor    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "puzzle",
		Short: "Send requests to search and index backends",
		Long: `puzzle sends one HTTP request to a search or index backend such as
Elasticsearch and prints the response. 4xx and 5xx responses are reported
as client and server errors.

Settings are read from puzzle.yml (or --config), PUZZLE_* environment
variables and flags, in increasing order of precedence.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.noColor {
				color.NoColor = true
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "Path to config file")
	pf.StringVar(&f.host, "host", "", "Backend host (overrides client.host)")
	pf.StringVar(&f.port, "port", "", "Backend port (overrides client.port)")
	pf.BoolVar(&f.ssl, "ssl", false, "Use https")
	pf.BoolVar(&f.strict, "strict", false, "With --ssl, verify the certificate host name")
	pf.StringVarP(&f.user, "user", "u", "", "Basic credentials as user:password")
	pf.StringArrayVarP(&f.headers, "header", "H", nil, "Raw header line, repeatable")
	pf.StringArrayVarP(&f.params, "param", "q", nil, "Query parameter key=value, repeatable, order kept")
	pf.StringVarP(&f.data, "data", "d", "", "Request body, or @file to read it from a file")
	pf.StringVar(&f.path, "path", "", "Print only this gjson path of the response body")
	pf.StringVar(&f.opaqueID, "opaque-id", "", "X-Opaque-Id header value (default: random UUID)")
	pf.DurationVar(&f.timeout, "timeout", 0, "Request timeout (default 30s)")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log requests as curl commands")

	root.AddCommand(newRequestCmd(f))
	for _, verb := range []string{"get", "put", "post", "patch", "delete", "head"} {
		root.AddCommand(newVerbCmd(f, verb))
	}
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command, f *flags) (*cliConfig, error) {
	var cfg cliConfig
	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("host") {
		cfg.Client.Host = f.host
	}
	if changed("port") {
		cfg.Client.Port = f.port
	}
	if changed("ssl") {
		cfg.Client.Secure = f.ssl
	}
	if changed("strict") {
		cfg.Client.Strict = f.strict
	}
	if changed("user") {
		user, pass, _ := strings.Cut(f.user, ":")
		cfg.Client.Username, cfg.Client.Password = user, pass
	}
	if changed("timeout") {
		cfg.Client.Timeout = f.timeout
	}
	cfg.Client.Headers = append(cfg.Client.Headers, f.headers...)
	if f.verbose {
		cfg.Logging.Level = "debug"
	}
	if f.noColor {
		cfg.Logging.NoColor = true
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
