// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package girder

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/OpenChemistry/ocrunner/pkg/defaults"
)

const (
	// DefaultUserAgent is sent when no WithUserAgent option is given.
	DefaultUserAgent = "ocrunner/1.0"

	// TokenHeader carries the session token issued by Authenticate.
	TokenHeader = "Girder-Token"

	// RequestIDHeader carries a unique id per outbound request.
	RequestIDHeader = "X-Request-Id"
)

var (
	DefaultMaxIdleConns        = 10
	DefaultMaxIdleConnsPerHost = 2
)

// Option defines a configuration option for Client.
type Option func(*Client)

// Client performs JSON requests against a Girder API base URL.
type Client struct {
	APIURL             string
	UserAgent          string
	TotalTimeout       time.Duration
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
	Client             *http.Client

	base     *url.URL
	token    string
	limiter  *rate.Limiter
	progress io.Writer

	totalTimeoutSet       bool
	connectTimeoutSet     bool
	insecureSkipVerifySet bool
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

func WithTotalTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.TotalTimeout = timeout
		c.totalTimeoutSet = true
	}
}

func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.ConnectTimeout = timeout
		c.connectTimeoutSet = true
	}
}

func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.InsecureSkipVerify = skip
		c.insecureSkipVerifySet = true
	}
}

// WithRateLimit throttles outbound requests to rps per second. A non-positive
// rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithProgress draws a transfer bar on w for large request and response bodies.
// A nil writer disables it.
func WithProgress(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// New creates a Client bound to apiURL.
func New(apiURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", apiURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", apiURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: missing host", apiURL)
	}

	t := newDefaultHTTPTransport()
	c := &Client{
		APIURL:         trimmed,
		UserAgent:      DefaultUserAgent,
		TotalTimeout:   defaults.HTTPClientTimeout,
		ConnectTimeout: defaults.HTTPConnectTimeout,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: t,
		},
		base: base,
	}

	for _, opt := range options {
		opt(c)
	}

	c.apply()
	return c, nil
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (c *Client) apply() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaults.HTTPClientTimeout, Transport: newDefaultHTTPTransport()}
	}

	if c.totalTimeoutSet && c.TotalTimeout > 0 {
		c.Client.Timeout = c.TotalTimeout
	}

	tr, ok := c.Client.Transport.(*http.Transport)
	if !ok || tr == nil {
		return
	}

	if c.connectTimeoutSet && c.ConnectTimeout > 0 {
		tr.DialContext = (&net.Dialer{
			Timeout:   c.ConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext
	}

	if tr.TLSClientConfig == nil {
		tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	tr.TLSClientConfig.MinVersion = tls.VersionTLS12
	if c.insecureSkipVerifySet {
		tr.TLSClientConfig.InsecureSkipVerify = c.InsecureSkipVerify //nolint:gosec // opt-in via --insecure-tls
	}
}

// Token returns the current session token, empty before Authenticate.
func (c *Client) Token() string {
	return c.token
}

// URL resolves an already escaped path against the API base URL and encodes
// params as the query.
func (c *Client) URL(path string, params url.Values) string {
	u := *c.base
	escaped := strings.TrimRight(c.base.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		unescaped = escaped
	}
	u.Path = unescaped
	u.RawPath = escaped
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	} else {
		u.RawQuery = ""
	}
	return u.String()
}
