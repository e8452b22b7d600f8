// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// buildHTTPClient returns a pooled client with the given overall timeout
// (0 disables it). Requests are never retried.
func buildHTTPClient(timeout time.Duration) *http.Client {
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = timeout
	return c
}

// withTimeout copies c and applies timeout when it is positive, leaving the
// caller's client untouched.
func withTimeout(c *http.Client, timeout time.Duration) *http.Client {
	if c == nil {
		return buildHTTPClient(timeout)
	}
	if timeout <= 0 {
		return c
	}
	cpy := *c
	cpy.Timeout = timeout
	return &cpy
}
