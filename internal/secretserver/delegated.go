// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"

	"golang.org/x/oauth2"
)

var _ Authenticator = (*DelegatedAuthenticator)(nil)

// DelegatedAuthenticator hands authentication to an Authorizer built per
// call, read through an oauth2.TokenSource. Whatever the Authorizer returns
// is mapped onto this package's error taxonomy.
type DelegatedAuthenticator struct {
	factory AuthorizerFactory
}

// NewDelegatedAuthenticator uses factory, or DefaultAuthorizerFactory when nil.
func NewDelegatedAuthenticator(factory AuthorizerFactory) *DelegatedAuthenticator {
	if factory == nil {
		factory = DefaultAuthorizerFactory()
	}
	return &DelegatedAuthenticator{factory: factory}
}

func (d *DelegatedAuthenticator) Authenticate(ctx context.Context, p ConnectionParameters) (*oauth2.Token, error) {
	authorizer := d.factory(p)
	if authorizer == nil {
		return nil, validationError(KindInvalidConfig, nil, "authorizer factory returned no authorizer")
	}
	tok, err := NewTokenSource(ctx, authorizer).Token()
	if err != nil {
		return nil, sanitize(err, p.Password)
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, protocolError(KindMissingTokenField, "authorizer returned an empty access token", nil)
	}
	return tok, nil
}
