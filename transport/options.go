package transport

import (
	"fmt"
	"sort"
	"time"
)

// Option names a transport setting.
type Option string

// Supported options and their value types.
const (
	// FollowLocation (bool) follows redirects. Default false.
	FollowLocation Option = "follow_location"
	// UserPwd (string) sends "user:password" as basic credentials.
	UserPwd Option = "userpwd"
	// SSLVerifyPeer (bool) verifies the certificate chain. Default true.
	SSLVerifyPeer Option = "ssl_verify_peer"
	// SSLVerifyHost (bool) verifies the certificate matches the host. Default true.
	SSLVerifyHost Option = "ssl_verify_host"
	// Timeout (time.Duration) bounds the whole request. Default DefaultTimeout.
	Timeout Option = "timeout"
	// CAFile (string) is a PEM bundle used to verify the server.
	CAFile Option = "ca_file"
)

// DefaultTimeout applies when no Timeout option is set.
const DefaultTimeout = 30 * time.Second

// Options maps option names to values.
type Options map[Option]any

// DefaultOptions returns the options a fresh client starts with.
func DefaultOptions() Options {
	return Options{FollowLocation: false}
}

// Clone returns a shallow copy.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []Option {
	keys := make([]Option, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// settings is the typed form of Options.
type settings struct {
	followLocation bool
	userPwd        string
	verifyPeer     bool
	verifyHost     bool
	timeout        time.Duration
	caFile         string
}

func defaultSettings() settings {
	return settings{verifyPeer: true, verifyHost: true, timeout: DefaultTimeout}
}

// parse checks every value's type and returns the typed settings.
func (o Options) parse() (settings, error) {
	s := defaultSettings()
	for _, k := range o.Keys() {
		v := o[k]
		var ok bool
		switch k {
		case FollowLocation:
			s.followLocation, ok = v.(bool)
		case UserPwd:
			s.userPwd, ok = v.(string)
		case SSLVerifyPeer:
			s.verifyPeer, ok = v.(bool)
		case SSLVerifyHost:
			s.verifyHost, ok = v.(bool)
		case Timeout:
			s.timeout, ok = v.(time.Duration)
			if ok && s.timeout <= 0 {
				return settings{}, fmt.Errorf("option %s must be positive, got %s", k, s.timeout)
			}
		case CAFile:
			s.caFile, ok = v.(string)
		default:
			return settings{}, fmt.Errorf("unsupported option %q", string(k))
		}
		if !ok {
			return settings{}, fmt.Errorf("option %s has invalid value type %T", k, v)
		}
	}
	return s, nil
}
