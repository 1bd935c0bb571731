// Package security builds TLS client configuration for the transport.
//
// Peer (chain) verification and host name verification are switched
// independently. When exactly one of them is disabled, Go's built-in
// verification is turned off and the remaining check runs in
// VerifyConnection; ForHost binds that check to the host being dialed.
//
//	cfg := security.TLSConfig{SkipPeerVerify: true}
//	tlsConfig, err := cfg.Build()
//	perDial := cfg.ForHost(tlsConfig, "search.internal")
package security
