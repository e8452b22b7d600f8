// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

// Package secretserver resolves credentials against a Delinea (Thycotic)
// Secret Server OAuth2 password-grant endpoint.
//
// Highlights:
//   - One call, one answer: Resolve returns either the access token or the
//     configured base URL. Nothing is cached, nothing is retried.
//   - Pluggable authentication: a direct HTTP POST to {base_url}/oauth2/token,
//     or a delegated Authorizer (password grant, or domain password grant when
//     a domain is configured). Both share the same output contract and error
//     taxonomy.
//   - Secrets stay secret: the password is masked in logs and stripped from
//     every error message.
//
// Errors are always *Error values; use errors.Is with ErrValidation,
// ErrAuthentication, ErrProtocol or ErrTransport to branch on the class.
package secretserver
