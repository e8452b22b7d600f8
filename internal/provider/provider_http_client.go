// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"net/http"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
	"github.com/hashicorp/go-cleanhttp"
)

// buildHTTPClient constructs the pooled HTTP client used for token requests.
// Token requests are never retried.
func buildHTTPClient(rc resolvedConfig) *http.Client {
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = rc.httpTimeout()
	return c
}

// newResolver builds the resolver for the configured strategy and user agent.
func (p *TSSProvider) newResolver(httpClient *http.Client, rc resolvedConfig) (*secretserver.Resolver, error) {
	return secretserver.NewResolver(secretserver.Config{
		Strategy:   secretserver.Strategy(rc.authStrategy),
		HTTPClient: httpClient,
		UserAgent:  fmt.Sprintf("%s/%s", secretserver.DefaultUserAgent, p.version),
	})
}
