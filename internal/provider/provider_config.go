// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// configuration derivation (unified) to avoid duplicated parsing across sections
func deriveResolvedConfig(data TSSProviderModel) resolvedConfig {
	// Base
	baseURL := strings.TrimSpace(readAttr(data.BaseURL, attrBaseURL))
	strategy := strings.ToLower(strings.TrimSpace(readAttr(data.AuthStrategy, attrAuthStrategy)))
	if strategy == "" {
		strategy = defaultAuthStrategy
	}

	// Auth
	username := strings.TrimSpace(readAttr(data.Username, attrUsername))
	password := readAttr(data.Password, attrPassword)
	domain := strings.TrimSpace(readAttr(data.Domain, attrDomain))

	// HTTP
	httpTimeoutSeconds := readInt64Default(data.HTTPTimeoutSeconds, defaultHTTPTimeoutSeconds)

	return resolvedConfig{
		baseURL:            baseURL,
		username:           username,
		password:           password,
		domain:             domain,
		authStrategy:       strategy,
		httpTimeoutSeconds: httpTimeoutSeconds,
	}
}

// checkBaseURL returns a human readable problem with raw, or "" when it is
// usable as a Secret Server base URL.
func checkBaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("base_url is not a valid URL: %v", err)
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "base_url must use the http or https scheme."
	case u.Host == "":
		return "base_url must include a host (e.g., https://myserver/SecretServer)."
	case u.User != nil:
		return "base_url must not include credentials; use username and password."
	case u.RawQuery != "" || u.Fragment != "":
		return "base_url must not include query parameters or fragments."
	}
	return ""
}

// validation per-section
func validateBase(rc resolvedConfig) []validationErr {
	var errs []validationErr
	if rc.baseURL == "" {
		errs = append(errs, validationErr{attr: attrBaseURL, summary: "Missing Base URL Configuration.", detail: "Provide 'base_url' or set TSS_BASE_URL (or TSS_SERVER_URL alias) environment variable."})
	} else if problem := checkBaseURL(rc.baseURL); problem != "" {
		errs = append(errs, validationErr{attr: attrBaseURL, summary: "Invalid Base URL Configuration.", detail: problem})
	}
	if _, err := secretserver.ParseStrategy(rc.authStrategy); err != nil {
		errs = append(errs, validationErr{attr: attrAuthStrategy, summary: "Invalid Auth Strategy Configuration.", detail: "auth_strategy must be 'direct' or 'delegated'."})
	}
	return errs
}

func validateHTTP(rc resolvedConfig) []validationErr {
	if rc.httpTimeoutSeconds < minHTTPTimeoutSeconds || rc.httpTimeoutSeconds > maxHTTPTimeoutSeconds {
		return []validationErr{{attr: attrHTTPTimeoutSeconds, summary: "Invalid HTTP Timeout Configuration.", detail: fmt.Sprintf("http_timeout_seconds must be between %d and %d seconds; got %d", minHTTPTimeoutSeconds, maxHTTPTimeoutSeconds, rc.httpTimeoutSeconds)}}
	}
	return nil
}

func validateAuth(rc resolvedConfig) []validationErr {
	var errs []validationErr
	if rc.username == "" {
		errs = append(errs, validationErr{attr: attrUsername, summary: "Missing Username Configuration.", detail: "Provide 'username' or set TSS_USERNAME."})
	}
	if rc.password == "" {
		errs = append(errs, validationErr{attr: attrPassword, summary: "Missing Password Configuration.", detail: "Provide 'password' or set TSS_PASSWORD."})
	}
	return errs
}

func validateResolvedConfig(rc resolvedConfig) []validationErr {
	var all []validationErr
	all = append(all, validateBase(rc)...)
	if len(all) == 0 { // if base fails, skip noisy follow-ups
		all = append(all, validateHTTP(rc)...)
		all = append(all, validateAuth(rc)...)
	}

	for i := range all {
		all[i] = sanitizeValidationError(all[i], rc)
	}
	return all
}
