// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Authenticator exchanges connection parameters for an access token, with
// expiry metadata when the server advertises it. Implementations return
// *Error values only.
type Authenticator interface {
	Authenticate(ctx context.Context, p ConnectionParameters) (*oauth2.Token, error)
}

var _ Authenticator = (*DirectAuthenticator)(nil)

// DirectAuthenticator posts the password grant straight to
// {base_url}/oauth2/token.
type DirectAuthenticator struct {
	client    *http.Client
	userAgent string
}

// NewDirectAuthenticator uses client for every request; nil selects a pooled
// client without timeout.
func NewDirectAuthenticator(client *http.Client, userAgent string) *DirectAuthenticator {
	if client == nil {
		client = buildHTTPClient(0)
	}
	return &DirectAuthenticator{client: client, userAgent: userAgent}
}

func (d *DirectAuthenticator) Authenticate(ctx context.Context, p ConnectionParameters) (*oauth2.Token, error) {
	tr, err := tokenRequest{
		client:    d.client,
		userAgent: d.userAgent,
		endpoint:  p.TokenURL(),
		form:      passwordGrantForm(p.Username, p.Password, p.Domain),
		secrets:   []string{p.Password},
	}.do(ctx)
	if err != nil {
		return nil, err
	}
	return tr.Token(time.Now()), nil
}
