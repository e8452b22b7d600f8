// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

// Centralized attribute names used in provider configuration schema and validation
const (
	attrBaseURL            = "base_url"
	attrUsername           = "username"
	attrPassword           = "password"
	attrDomain             = "domain"
	attrAuthStrategy       = "auth_strategy"
	attrHTTPTimeoutSeconds = "http_timeout_seconds"
)

// Environment variables read when the matching attribute is not set.
const (
	envBaseURL      = "TSS_BASE_URL"
	envServerURL    = "TSS_SERVER_URL"
	envUsername     = "TSS_USERNAME"
	envPassword     = "TSS_PASSWORD"
	envDomain       = "TSS_DOMAIN"
	envAuthStrategy = "TSS_AUTH_STRATEGY"
)

// Centralized provider defaults
const (
	defaultAuthStrategy       = "direct"
	defaultHTTPTimeoutSeconds = 30
	minHTTPTimeoutSeconds     = 1
	maxHTTPTimeoutSeconds     = 600
)
