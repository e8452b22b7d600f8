// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// maxTokenBodyBytes bounds how much of a token response is read.
const maxTokenBodyBytes = 1 << 20

// tokenRequest is one POST to a token endpoint.
type tokenRequest struct {
	client    *http.Client
	userAgent string
	endpoint  string
	form      url.Values
	// secrets are stripped from every error message built for this request.
	secrets []string
}

// IsSuccess reports whether the given HTTP status code is in 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// do performs the exchange. It never retries: a failure is returned as soon
// as it is observed.
func (tr tokenRequest) do(ctx context.Context) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tr.endpoint, strings.NewReader(tr.form.Encode()))
	if err != nil {
		return nil, transportError("build token request", err, tr.secrets...)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if tr.userAgent != "" {
		req.Header.Set("User-Agent", tr.userAgent)
	}

	client := tr.client
	if client == nil {
		client = buildHTTPClient(0)
	}

	tflog.SubsystemDebug(ctx, logSubsystem, "requesting access token", map[string]interface{}{
		"endpoint":   tr.endpoint,
		"domain_set": tr.form.Has("domain"),
	})
	resp, err := client.Do(req)
	if err != nil {
		return nil, transportError("token request", err, tr.secrets...)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxTokenBodyBytes))
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBodyBytes))
	if err != nil {
		return nil, transportError("read token response", err, tr.secrets...)
	}
	tflog.SubsystemDebug(ctx, logSubsystem, "token endpoint responded", map[string]interface{}{
		"status_code": resp.StatusCode,
	})

	if !IsSuccess(resp.StatusCode) {
		msg := fmt.Sprintf("token request failed with HTTP status %d", resp.StatusCode)
		if detail := describeErrorBody(body); detail != "" {
			msg += ": " + RedactSecrets(detail)
		}
		return nil, authenticationError(resp.StatusCode, redactSecret(msg, tr.secrets...))
	}

	tok, err := decodeTokenResponse(body)
	if err != nil {
		return nil, sanitize(err, tr.secrets...)
	}
	return tok, nil
}
