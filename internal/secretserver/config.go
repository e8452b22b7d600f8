// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Strategy names an authentication strategy.
type Strategy string

const (
	StrategyDirect    Strategy = "direct"
	StrategyDelegated Strategy = "delegated"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "acedya/tss-credential-plugin"

// Strategies lists the valid strategy names.
var Strategies = []Strategy{StrategyDirect, StrategyDelegated}

// ParseStrategy normalizes s; "" maps to StrategyDirect.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyDirect:
		return StrategyDirect, nil
	case StrategyDelegated:
		return StrategyDelegated, nil
	}
	return "", fmt.Errorf("unknown authentication strategy %q; valid values: %q, %q", s, StrategyDirect, StrategyDelegated)
}

// Config configures a Resolver.
type Config struct {
	// Strategy defaults to StrategyDirect.
	Strategy Strategy
	// HTTPTimeout bounds each token request; 0 means no timeout.
	HTTPTimeout time.Duration
	// HTTPClient overrides the pooled default client. HTTPTimeout, when set,
	// is applied to a copy.
	HTTPClient *http.Client
	UserAgent  string
	// AuthorizerFactory is only used by StrategyDelegated. Defaults to
	// DefaultAuthorizerFactory with the configured client and user agent.
	AuthorizerFactory AuthorizerFactory
}

func (c Config) validate() (Strategy, error) {
	strategy, err := ParseStrategy(string(c.Strategy))
	if err != nil {
		return "", err
	}
	if c.HTTPTimeout < 0 {
		return "", fmt.Errorf("http timeout must not be negative; got %s", c.HTTPTimeout)
	}
	return strategy, nil
}
