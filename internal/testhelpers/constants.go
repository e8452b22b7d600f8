// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package testhelpers

// Canned credentials shared by tests.
const (
	FakeBaseURLPath = "/SecretServer"
	FakeUsername    = "appuser"
	FakePassword    = "s3cret"
	FakeDomain      = "MYDOMAIN"
	FakeToken       = "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.fakepayload.fakesig"
)

// ProviderTmpl is the provider block template under testdata/templates.
const ProviderTmpl = "provider.tf.tmpl"
