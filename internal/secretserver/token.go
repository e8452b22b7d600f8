// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const accessTokenField = "access_token"

// TokenResponse is the subset of the token endpoint payload this package
// understands.
type TokenResponse struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	// ExpiresIn is the advertised lifetime in seconds, 0 when absent.
	ExpiresIn int64
}

// Token converts the response into an *oauth2.Token, with Expiry computed
// from ExpiresIn relative to now.
func (tr *TokenResponse) Token(now time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
	}
	if tr.ExpiresIn > 0 {
		tok.Expiry = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok
}

// decodeTokenResponse parses a successful token endpoint body. Only field
// names ever reach error messages, never field values.
func decodeTokenResponse(body []byte) (*TokenResponse, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, protocolError(KindInvalidResponseBody, "token response is not a JSON object", err)
	}
	if fields == nil {
		return nil, protocolError(KindInvalidResponseBody, "token response is not a JSON object", nil)
	}

	raw, ok := fields[accessTokenField]
	if !ok {
		return nil, protocolError(KindMissingTokenField,
			fmt.Sprintf("token response has no %q field; fields present: [%s]", accessTokenField, strings.Join(fieldNames(fields), ", ")), nil)
	}
	var token string
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &token) != nil {
		return nil, protocolError(KindWrongTokenType,
			fmt.Sprintf("token response field %q is %s, want string", accessTokenField, jsonKind(raw)), nil)
	}
	if token == "" {
		return nil, protocolError(KindMissingTokenField,
			fmt.Sprintf("token response field %q is empty", accessTokenField), nil)
	}

	tr := &TokenResponse{AccessToken: token}
	// Optional metadata is best effort; servers disagree on its encoding.
	_ = json.Unmarshal(fields["token_type"], &tr.TokenType)
	_ = json.Unmarshal(fields["refresh_token"], &tr.RefreshToken)
	tr.ExpiresIn = decodeExpiresIn(fields["expires_in"])
	return tr, nil
}

func decodeExpiresIn(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return v
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	}
	return 0
}

// oauthErrorBody is the RFC 6749 error payload.
type oauthErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// describeErrorBody extracts the OAuth2 error code from a failure body, if
// any. The raw body is never echoed.
func describeErrorBody(body []byte) string {
	var eb oauthErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == "" {
		return ""
	}
	if eb.ErrorDescription == "" {
		return eb.Error
	}
	return eb.Error + ": " + eb.ErrorDescription
}

func fieldNames(fields map[string]json.RawMessage) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func jsonKind(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	}
	return "a number"
}
