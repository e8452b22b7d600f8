// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"time"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// validationErr captures a configuration validation error and optional attribute path.
type validationErr struct {
	attr    string // empty for general error
	summary string
	detail  string
}

// resolvedConfig contains normalized provider configuration used to build the resolver.
type resolvedConfig struct {
	baseURL            string
	username           string
	password           string
	domain             string
	authStrategy       string
	httpTimeoutSeconds int
}

func (rc resolvedConfig) connection() secretserver.ConnectionParameters {
	return secretserver.ConnectionParameters{
		BaseURL:  rc.baseURL,
		Username: rc.username,
		Password: rc.password,
		Domain:   rc.domain,
	}
}

func (rc resolvedConfig) httpTimeout() time.Duration {
	return time.Duration(rc.httpTimeoutSeconds) * time.Second
}
