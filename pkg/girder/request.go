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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/OpenChemistry/ocrunner/pkg/progress"
)

const apiKeyTokenPath = "/api_key/token"

type tokenResponse struct {
	AuthToken struct {
		Token   string `json:"token"`
		Expires string `json:"expires"`
	} `json:"authToken"`
}

// Authenticate exchanges apiKey for a session token and keeps it for later requests.
func (c *Client) Authenticate(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("api key is empty")
	}

	var resp tokenResponse
	if err := c.Post(ctx, apiKeyTokenPath, url.Values{"key": {apiKey}}, nil, &resp); err != nil {
		return err
	}
	if resp.AuthToken.Token == "" {
		return fmt.Errorf("authentication response from %s did not include a token", c.APIURL)
	}

	c.token = resp.AuthToken.Token
	slog.Debug("authenticated", "apiUrl", c.APIURL, "expires", resp.AuthToken.Expires)
	return nil
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, params, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, params, body, out)
}

// Delete issues a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, params url.Values, out any) error {
	return c.Do(ctx, http.MethodDelete, path, params, nil, out)
}

// Do sends one request. A nil body sends no payload; a nil out discards the response.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Client == nil {
		return fmt.Errorf("http client is nil")
	}

	target := c.URL(path, params)
	// logs and errors never carry the query, which may hold the api key
	display := c.URL(path, nil)

	req, err := c.newRequest(ctx, method, target, body)
	if err != nil {
		return err
	}

	if c.limiter != nil {
		if c.limiter.Tokens() < 1 {
			rateLimitWaits.Inc()
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait for %s %s: %w", method, path, err)
		}
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%s %s failed: %w", method, display, err)
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if c.progress != nil {
		reader = progress.NewReader(resp.Body, progress.NewBar(c.progress, method+" "+path, resp.ContentLength))
	}
	data, err := io.ReadAll(reader)
	duration := time.Since(start)

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
	responseBytes.Add(float64(len(data)))

	slog.Debug("api request",
		"method", method,
		"url", display,
		"status", resp.StatusCode,
		"requestId", req.Header.Get(RequestIDHeader),
		"duration", duration)

	if err != nil {
		return fmt.Errorf("failed to read response from %s %s: %w", method, display, err)
	}

	if !isSuccess(resp.StatusCode) {
		return &HTTPError{
			Status: resp.StatusCode,
			Method: method,
			URL:    display,
			Body:   data,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, display, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, target string, body any) (*http.Request, error) {
	var (
		payload []byte
		reader  io.Reader
	)
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s %s: %w", method, target, err)
		}
		reader = bytes.NewReader(payload)
		if c.progress != nil {
			reader = progress.NewReader(reader, progress.NewBar(c.progress, "upload", int64(len(payload))))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, target, err)
	}
	if body != nil {
		req.ContentLength = int64(len(payload))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(payload)), nil
		}
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if c.token != "" {
		req.Header.Set(TokenHeader, c.token)
	}
	return req, nil
}
