// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"strings"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// redactSecretValue returns a constant mask for non-empty secret values.
func redactSecretValue(v string) string {
	if v == "" {
		return ""
	}
	return "[REDACTED]"
}

// sanitizeValidationError returns a copy of the given validation error with secrets redacted.
func sanitizeValidationError(e validationErr, rc resolvedConfig) validationErr {
	summary := e.summary
	detail := e.detail
	if rc.password != "" {
		summary = strings.ReplaceAll(summary, rc.password, redactSecretValue(rc.password))
		detail = strings.ReplaceAll(detail, rc.password, redactSecretValue(rc.password))
	}

	e.summary = secretserver.RedactSecrets(summary)
	e.detail = secretserver.RedactSecrets(detail)
	return e
}
