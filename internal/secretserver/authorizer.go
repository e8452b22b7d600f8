// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Authorizer obtains an access token with its own HTTP logic. Each call
// authenticates again; nothing is cached.
type Authorizer interface {
	AccessToken(ctx context.Context) (string, error)
}

// AuthorizerOption tunes the built-in authorizers.
type AuthorizerOption func(*PasswordGrantAuthorizer)

// WithHTTPClient sets the client used for the token request.
func WithHTTPClient(c *http.Client) AuthorizerOption {
	return func(a *PasswordGrantAuthorizer) { a.client = c }
}

// WithUserAgent sets the User-Agent header of the token request.
func WithUserAgent(ua string) AuthorizerOption {
	return func(a *PasswordGrantAuthorizer) { a.userAgent = ua }
}

var (
	_ Authorizer = (*PasswordGrantAuthorizer)(nil)
	_ Authorizer = (*DomainPasswordGrantAuthorizer)(nil)
)

// PasswordGrantAuthorizer authenticates with username and password.
type PasswordGrantAuthorizer struct {
	baseURL   string
	username  string
	password  string
	client    *http.Client
	userAgent string
}

func NewPasswordGrantAuthorizer(baseURL, username, password string, opts ...AuthorizerOption) *PasswordGrantAuthorizer {
	a := &PasswordGrantAuthorizer{baseURL: baseURL, username: username, password: password}
	for _, opt := range opts {
		opt(a)
	}
	if a.client == nil {
		a.client = buildHTTPClient(0)
	}
	return a
}

func (a *PasswordGrantAuthorizer) AccessToken(ctx context.Context) (string, error) {
	tr, err := a.request(ctx, "")
	if err != nil {
		return "", err
	}
	return tr.AccessToken, nil
}

// Token returns the full token with expiry metadata.
func (a *PasswordGrantAuthorizer) Token(ctx context.Context) (*oauth2.Token, error) {
	tr, err := a.request(ctx, "")
	if err != nil {
		return nil, err
	}
	return tr.Token(time.Now()), nil
}

func (a *PasswordGrantAuthorizer) request(ctx context.Context, domain string) (*TokenResponse, error) {
	return tokenRequest{
		client:    a.client,
		userAgent: a.userAgent,
		endpoint:  strings.TrimRight(strings.TrimSpace(a.baseURL), "/") + TokenPath,
		form:      passwordGrantForm(a.username, a.password, domain),
		secrets:   []string{a.password},
	}.do(ctx)
}

// DomainPasswordGrantAuthorizer adds the user's domain to the password grant.
type DomainPasswordGrantAuthorizer struct {
	PasswordGrantAuthorizer
	domain string
}

func NewDomainPasswordGrantAuthorizer(baseURL, username, domain, password string, opts ...AuthorizerOption) *DomainPasswordGrantAuthorizer {
	return &DomainPasswordGrantAuthorizer{
		PasswordGrantAuthorizer: *NewPasswordGrantAuthorizer(baseURL, username, password, opts...),
		domain:                  domain,
	}
}

func (a *DomainPasswordGrantAuthorizer) AccessToken(ctx context.Context) (string, error) {
	tr, err := a.request(ctx, a.domain)
	if err != nil {
		return "", err
	}
	return tr.AccessToken, nil
}

func (a *DomainPasswordGrantAuthorizer) Token(ctx context.Context) (*oauth2.Token, error) {
	tr, err := a.request(ctx, a.domain)
	if err != nil {
		return nil, err
	}
	return tr.Token(time.Now()), nil
}

// AuthorizerFactory builds the Authorizer for one resolution call.
type AuthorizerFactory func(p ConnectionParameters) Authorizer

// DefaultAuthorizerFactory picks DomainPasswordGrantAuthorizer when a domain
// is set, PasswordGrantAuthorizer otherwise.
func DefaultAuthorizerFactory(opts ...AuthorizerOption) AuthorizerFactory {
	return func(p ConnectionParameters) Authorizer {
		if p.HasDomain() {
			return NewDomainPasswordGrantAuthorizer(p.BaseURL, p.Username, p.Domain, p.Password, opts...)
		}
		return NewPasswordGrantAuthorizer(p.BaseURL, p.Username, p.Password, opts...)
	}
}
