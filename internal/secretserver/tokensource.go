// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"

	"golang.org/x/oauth2"
)

// tokenAuthorizer is implemented by authorizers that expose expiry metadata.
type tokenAuthorizer interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// NewTokenSource adapts a to oauth2.TokenSource. Every Token call performs a
// fresh authentication; wrap it in oauth2.ReuseTokenSource if reuse is wanted.
func NewTokenSource(ctx context.Context, a Authorizer) oauth2.TokenSource {
	return &authorizerTokenSource{ctx: ctx, authorizer: a}
}

type authorizerTokenSource struct {
	ctx        context.Context
	authorizer Authorizer
}

func (s *authorizerTokenSource) Token() (*oauth2.Token, error) {
	if ta, ok := s.authorizer.(tokenAuthorizer); ok {
		return ta.Token(s.ctx)
	}
	token, err := s.authorizer.AccessToken(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
