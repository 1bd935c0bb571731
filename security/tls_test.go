package security

import (
	"crypto/tls"
	"net/http"
	"strings"
	"testing"

	"github.com/kbukum/puzzle/security/tlstest"
)

func TestTLSConfig_Build_NilConfig(t *testing.T) {
	var cfg *TLSConfig
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil for nil config")
	}
}

func TestTLSConfig_Build_ZeroValue(t *testing.T) {
	result, err := (&TLSConfig{}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil for zero-value config")
	}
}

func TestTLSConfig_Build_SkipBoth(t *testing.T) {
	cfg := &TLSConfig{SkipPeerVerify: true, SkipHostVerify: true}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify=true")
	}
	if result.VerifyConnection != nil {
		t.Error("no residual check expected when both are skipped")
	}
	if result.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected MinVersion=TLS12, got %d", result.MinVersion)
	}
}

func TestTLSConfig_Build_HostOnly(t *testing.T) {
	cfg := &TLSConfig{SkipPeerVerify: true}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.InsecureSkipVerify {
		t.Error("built-in verification must be off")
	}
	if result.VerifyConnection == nil {
		t.Error("expected host check in VerifyConnection")
	}
	if !cfg.PartialVerify() {
		t.Error("expected PartialVerify=true")
	}
}

func TestTLSConfig_Build_InvalidCA(t *testing.T) {
	cfg := &TLSConfig{CAFile: tlstest.WriteInvalidPEM(t, "bad-ca.pem")}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for invalid CA")
	}
}

func TestTLSConfig_Build_MissingCA(t *testing.T) {
	cfg := &TLSConfig{CAFile: "/nonexistent/ca.pem"}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for missing CA file")
	}
}

func TestTLSConfig_Build_ClientCert(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	cfg := &TLSConfig{CAFile: certs.CAFile, CertFile: certs.CertFile, KeyFile: certs.KeyFile}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RootCAs == nil {
		t.Error("expected RootCAs to be set")
	}
	if len(result.Certificates) != 1 {
		t.Errorf("expected 1 client certificate, got %d", len(result.Certificates))
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	if err := (&TLSConfig{CertFile: "cert.pem"}).Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
	if err := (&TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	var nilCfg *TLSConfig
	if err := nilCfg.Validate(); err != nil {
		t.Errorf("nil config should validate: %v", err)
	}
}

func TestTLSConfig_ForHost(t *testing.T) {
	tests := []struct {
		name    string
		hosts   []string
		dial    string
		cfg     TLSConfig
		wantErr string
	}{
		{"host only, name matches", nil, "127.0.0.1", TLSConfig{SkipPeerVerify: true}, ""},
		{"host only, name mismatch", []string{"search.internal"}, "127.0.0.1", TLSConfig{SkipPeerVerify: true}, "verify host"},
		{"skip both, name mismatch", []string{"search.internal"}, "127.0.0.1", TLSConfig{SkipPeerVerify: true, SkipHostVerify: true}, ""},
		{"chain only, unknown CA", nil, "127.0.0.1", TLSConfig{SkipHostVerify: true}, "verify peer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs := tlstest.GenerateTLSCerts(t, tt.hosts...)
			srv := tlstest.NewTLSServer(t, certs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			base, err := tt.cfg.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			conn, err := tls.Dial("tcp", srv.Listener.Addr().String(), tt.cfg.ForHost(base, tt.dial))
			if conn != nil {
				_ = conn.Close()
			}
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected handshake error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTLSConfig_ForHost_Nil(t *testing.T) {
	var cfg *TLSConfig
	if cfg.ForHost(nil, "x") != nil {
		t.Error("expected nil for nil base")
	}
	base := &tls.Config{ServerName: "a"}
	out := cfg.ForHost(base, "x")
	if out == base || out.ServerName != "a" {
		t.Error("expected an unchanged copy")
	}
}
