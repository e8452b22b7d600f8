// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the Terraform Provider for Delinea Secret Server.
//
// Highlights:
//   - Auth: OAuth2 password grant for an application user, with an optional domain.
//   - Outputs: tss_credential returns one value picked by identifier, tss_credentials
//     returns token and server_url together, and the tss_token ephemeral resource
//     keeps the token out of state entirely.
//   - No caching and no retries: every read authenticates once and surfaces failures as-is.
//   - Configuration falls back to TSS_* environment variables; HCL always wins.
package provider
