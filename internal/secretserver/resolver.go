// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"golang.org/x/oauth2"
)

// Output names of ResolveAll.
const (
	OutputToken     = "token"
	OutputServerURL = "server_url"
)

// Resolver turns connection parameters into the value a job needs. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	strategy      Strategy
	authenticator Authenticator
}

// NewResolver builds a Resolver from cfg.
func NewResolver(cfg Config) (*Resolver, error) {
	strategy, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client := withTimeout(cfg.HTTPClient, cfg.HTTPTimeout)

	var auth Authenticator
	switch strategy {
	case StrategyDelegated:
		factory := cfg.AuthorizerFactory
		if factory == nil {
			factory = DefaultAuthorizerFactory(WithHTTPClient(client), WithUserAgent(userAgent))
		}
		auth = NewDelegatedAuthenticator(factory)
	default:
		auth = NewDirectAuthenticator(client, userAgent)
	}
	return &Resolver{strategy: strategy, authenticator: auth}, nil
}

// Strategy reports the configured authentication strategy.
func (r *Resolver) Strategy() Strategy { return r.strategy }

// Resolve validates p and returns the value picked by sel: the base URL
// as-is, or a freshly issued access token.
func (r *Resolver) Resolve(ctx context.Context, p ConnectionParameters, sel OutputSelector) (string, error) {
	if err := p.Validate(); err != nil {
		return "", sanitize(err, p.Password)
	}
	sel, err := sel.normalize()
	if err != nil {
		return "", sanitize(err, p.Password)
	}
	if sel == SelectorBaseURL {
		return p.BaseURL, nil
	}
	tok, err := r.token(ctx, p)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Token validates p and issues a fresh token, keeping the expiry advertised
// by the server (zero Expiry when none was).
func (r *Resolver) Token(ctx context.Context, p ConnectionParameters) (*oauth2.Token, error) {
	if err := p.Validate(); err != nil {
		return nil, sanitize(err, p.Password)
	}
	return r.token(ctx, p)
}

// ResolveAll returns every output at once, for platforms that inject
// several variables from one credential.
func (r *Resolver) ResolveAll(ctx context.Context, p ConnectionParameters) (map[string]string, error) {
	if err := p.Validate(); err != nil {
		return nil, sanitize(err, p.Password)
	}
	tok, err := r.token(ctx, p)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		OutputToken:     tok.AccessToken,
		OutputServerURL: p.BaseURL,
	}, nil
}

func (r *Resolver) token(ctx context.Context, p ConnectionParameters) (*oauth2.Token, error) {
	ctx = withLogging(ctx, p, r.strategy)
	tflog.SubsystemDebug(ctx, logSubsystem, "resolving access token", map[string]interface{}{
		"domain_set": p.HasDomain(),
	})
	tok, err := r.authenticator.Authenticate(ctx, p)
	if err != nil {
		err = sanitize(err, p.Password)
		tflog.SubsystemDebug(ctx, logSubsystem, "access token request failed", map[string]interface{}{
			"error": err.Error(),
			"kind":  string(KindOf(err)),
		})
		return nil, err
	}
	ctx = maskToken(ctx, tok.AccessToken)
	tflog.SubsystemDebug(ctx, logSubsystem, "access token issued", map[string]interface{}{
		"token_length": len(tok.AccessToken),
		"expires":      !tok.Expiry.IsZero(),
	})
	return tok, nil
}
