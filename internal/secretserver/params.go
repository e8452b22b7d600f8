// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"fmt"
	"net/url"
	"strings"
)

// Input field names, shared with the hosting platform's credential form.
const (
	FieldBaseURL  = "base_url"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldDomain   = "domain"
)

// TokenPath is appended to the base URL to reach the OAuth2 token endpoint.
const TokenPath = "/oauth2/token"

// ConnectionParameters are the stored connection settings for one
// resolution call.
type ConnectionParameters struct {
	BaseURL  string
	Username string
	Password string
	// Domain is optional; when blank it is left out of the token request.
	Domain string
}

// Validate reports every required field that is empty or blank.
func (p ConnectionParameters) Validate() error {
	var missing []string
	if strings.TrimSpace(p.BaseURL) == "" {
		missing = append(missing, FieldBaseURL)
	}
	if strings.TrimSpace(p.Username) == "" {
		missing = append(missing, FieldUsername)
	}
	if p.Password == "" {
		missing = append(missing, FieldPassword)
	}
	if len(missing) == 0 {
		return nil
	}
	return validationError(KindMissingField, missing,
		fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")))
}

// TokenURL is the base URL with trailing slashes stripped plus TokenPath.
func (p ConnectionParameters) TokenURL() string {
	return strings.TrimRight(strings.TrimSpace(p.BaseURL), "/") + TokenPath
}

// HasDomain reports whether a non-blank domain is configured.
func (p ConnectionParameters) HasDomain() bool {
	return strings.TrimSpace(p.Domain) != ""
}

// String never prints the password.
func (p ConnectionParameters) String() string {
	return fmt.Sprintf("{BaseURL:%s Username:%s Password:%s Domain:%s}",
		p.BaseURL, p.Username, redactValue(p.Password), p.Domain)
}

func (p ConnectionParameters) GoString() string {
	return fmt.Sprintf("secretserver.ConnectionParameters{BaseURL:%q, Username:%q, Password:%q, Domain:%q}",
		p.BaseURL, p.Username, redactValue(p.Password), p.Domain)
}

func redactValue(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// passwordGrantForm builds the form body of a password grant. A blank
// (empty or whitespace-only) domain is treated as absent and the key is left
// out; any other domain is sent trimmed.
func passwordGrantForm(username, password, domain string) url.Values {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}
	if d := strings.TrimSpace(domain); d != "" {
		form.Set("domain", d)
	}
	return form
}
