// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

// Package testhelpers provides shared testing utilities used across unit and
// acceptance tests.
//
// Intended use:
//   - Unit tests: a fake Secret Server token endpoint that records every
//     request, plus canned credentials and fixtures.
//   - Acceptance tests: Terraform configuration templates rendered from
//     testdata/templates and live-server environment pre-checks.
//
// Conventions:
//   - Never leak secrets in logs, errors, or golden files; assert on their
//     absence instead.
//
// This package is for test code and is not part of the provider's public API.
package testhelpers
