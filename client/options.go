package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied before the session transport wrapper is installed,
// so transport-related options (like debug logging) sit underneath the
// bearer-token wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The session transport
// wrapper is still installed on top of whatever transport it carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithLogger sets the logger used by the Client and its sync engines.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped when enabled is true.
//
// The debug transport is installed beneath the session wrapper. Do not
// enable in production: dumps include the bearer token.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// envOptions are the AGENTBOARD_* environment overrides read by FromEnv.
type envOptions struct {
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
	Debug       bool          `envconfig:"DEBUG"`
}

// FromEnv reads AGENTBOARD_HTTP_TIMEOUT and AGENTBOARD_DEBUG and applies
// the corresponding options. Unset variables leave defaults untouched.
func FromEnv() Option {
	return func(c *Client) error {
		var eo envOptions
		if err := envconfig.Process("agentboard", &eo); err != nil {
			return err
		}
		if eo.HTTPTimeout > 0 {
			if err := WithHTTPTimeout(eo.HTTPTimeout)(c); err != nil {
				return err
			}
		}
		if eo.Debug {
			return WithDebugLogging(true)(c)
		}
		return nil
	}
}
