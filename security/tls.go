package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds TLS client settings.
type TLSConfig struct {
	// SkipPeerVerify disables certificate chain verification.
	SkipPeerVerify bool `yaml:"skip_peer_verify" mapstructure:"skip_peer_verify"`

	// SkipHostVerify disables host name verification.
	SkipHostVerify bool `yaml:"skip_host_verify" mapstructure:"skip_host_verify"`

	// CAFile is the path to the CA certificate file for verifying the server.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`

	// CertFile is the path to the client TLS certificate file (for mTLS).
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`

	// KeyFile is the path to the client TLS key file (for mTLS).
	KeyFile string `yaml:"key_file" mapstructure:"key_file"`

	// ServerName overrides the name used for host verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// MinVersion is the minimum TLS version. Defaults to TLS 1.2.
	MinVersion uint16 `yaml:"min_version" mapstructure:"min_version"`
}

// Build creates a *tls.Config from the configuration.
// Returns nil if nothing is configured.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || !c.hasSettings() {
		return nil, nil
	}

	minVersion := c.MinVersion
	if minVersion == 0 {
		minVersion = tls.VersionTLS12
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipPeerVerify || c.SkipHostVerify,
		ServerName:         c.ServerName,
		MinVersion:         minVersion,
	}

	if err := c.loadCA(cfg); err != nil {
		return nil, err
	}
	if err := c.loadClientCert(cfg); err != nil {
		return nil, err
	}

	if c.PartialVerify() {
		cfg.VerifyConnection = verifier(cfg.RootCAs, c.ServerName, !c.SkipPeerVerify, !c.SkipHostVerify)
	}

	return cfg, nil
}

// ForHost returns a copy of cfg whose remaining check is bound to host.
// It is a no-op copy unless exactly one verification is disabled.
func (c *TLSConfig) ForHost(cfg *tls.Config, host string) *tls.Config {
	if cfg == nil {
		return nil
	}
	out := cfg.Clone()
	if c == nil || !c.PartialVerify() {
		return out
	}
	name := host
	if c.ServerName != "" {
		name = c.ServerName
	}
	out.VerifyConnection = verifier(out.RootCAs, name, !c.SkipPeerVerify, !c.SkipHostVerify)
	return out
}

// PartialVerify reports whether exactly one of the two checks is disabled.
func (c *TLSConfig) PartialVerify() bool {
	if c == nil {
		return false
	}
	return c.SkipPeerVerify != c.SkipHostVerify
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("security/tls: both cert_file and key_file must be provided together")
	}
	return nil
}

// IsEnabled returns true if any TLS setting is configured.
func (c *TLSConfig) IsEnabled() bool {
	return c != nil && c.hasSettings()
}

func (c *TLSConfig) hasSettings() bool {
	return c.SkipPeerVerify || c.SkipHostVerify || c.CAFile != "" || c.CertFile != "" || c.ServerName != ""
}

func (c *TLSConfig) loadCA(cfg *tls.Config) error {
	if c.CAFile == "" {
		return nil
	}
	ca, err := os.ReadFile(c.CAFile)
	if err != nil {
		return fmt.Errorf("security/tls: failed to read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(ca) {
		return fmt.Errorf("security/tls: failed to parse CA certificate")
	}
	cfg.RootCAs = pool
	return nil
}

func (c *TLSConfig) loadClientCert(cfg *tls.Config) error {
	if c.CertFile == "" || c.KeyFile == "" {
		return nil
	}
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return fmt.Errorf("security/tls: failed to load client certificate: %w", err)
	}
	cfg.Certificates = []tls.Certificate{cert}
	return nil
}

// verifier runs the checks Go skipped because InsecureSkipVerify is set.
// A nil roots pool means the system pool. An empty host falls back to the
// SNI name from the handshake.
func verifier(roots *x509.CertPool, host string, chain, name bool) func(tls.ConnectionState) error {
	return func(cs tls.ConnectionState) error {
		if len(cs.PeerCertificates) == 0 {
			return fmt.Errorf("security/tls: server presented no certificate")
		}
		leaf := cs.PeerCertificates[0]

		if chain {
			opts := x509.VerifyOptions{
				Roots:         roots,
				Intermediates: x509.NewCertPool(),
			}
			for _, cert := range cs.PeerCertificates[1:] {
				opts.Intermediates.AddCert(cert)
			}
			if _, err := leaf.Verify(opts); err != nil {
				return fmt.Errorf("security/tls: verify peer: %w", err)
			}
		}

		if name {
			target := host
			if target == "" {
				target = cs.ServerName
			}
			if err := leaf.VerifyHostname(target); err != nil {
				return fmt.Errorf("security/tls: verify host: %w", err)
			}
		}
		return nil
	}
}
