// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
)

// classSummaries maps an error class to the short diagnostic summary.
var classSummaries = map[secretserver.Class]string{
	secretserver.ClassValidation:     "invalid credential input",
	secretserver.ClassAuthentication: "Secret Server rejected the credentials",
	secretserver.ClassProtocol:       "unexpected token response",
	secretserver.ClassTransport:      "could not reach Secret Server",
}

// errorFromResolve builds a redacted summary and detail for a resolver error.
func errorFromResolve(op string, err error) (string, string) {
	var se *secretserver.Error
	if !errors.As(err, &se) {
		return secretserver.RedactSecrets(fmt.Sprintf("%s failed", op)), secretserver.RedactSecrets(err.Error())
	}

	summary := fmt.Sprintf("%s failed", op)
	if s, ok := classSummaries[se.Class]; ok {
		summary = fmt.Sprintf("%s failed: %s", op, s)
	}

	detailParts := []string{se.Error()}
	if se.StatusCode != 0 {
		detailParts = append(detailParts, fmt.Sprintf("HTTP status: %d", se.StatusCode))
	}
	if hint := hintFor(se); hint != "" {
		detailParts = append(detailParts, "Hint: "+hint)
	}
	return secretserver.RedactSecrets(summary), secretserver.RedactSecrets(strings.Join(detailParts, "\n"))
}

func hintFor(se *secretserver.Error) string {
	switch se.Kind {
	case secretserver.KindTimeout:
		return "deadline exceeded; increase http_timeout_seconds or check Secret Server latency."
	case secretserver.KindCanceled:
		return "canceled; the operation was interrupted before Secret Server answered."
	case secretserver.KindConnectionFailure:
		return "check base_url and that Secret Server is reachable from this host."
	case secretserver.KindHTTPFailure:
		if se.StatusCode == http.StatusBadRequest || se.StatusCode == http.StatusUnauthorized {
			return "check username, password and domain."
		}
	case secretserver.KindMissingTokenField, secretserver.KindWrongTokenType, secretserver.KindInvalidResponseBody:
		return "base_url may not point at a Secret Server instance; it usually ends in /SecretServer."
	}
	return ""
}

// appendResolveError records err on diags, scoped to the offending attribute
// when the error names one this data source or resource exposes.
func appendResolveError(diags *diag.Diagnostics, op string, err error, attrs ...string) {
	summary, detail := errorFromResolve(op, err)
	var se *secretserver.Error
	if errors.As(err, &se) {
		for _, f := range se.Fields {
			for _, a := range attrs {
				if f == a {
					diags.AddAttributeError(path.Root(a), summary, detail)
					return
				}
			}
		}
	}
	diags.AddError(summary, detail)
}
