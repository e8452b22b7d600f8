// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"text/template"
)

// TemplatePath returns the path of a template file under testdata/templates.
func TemplatePath(name string) string {
	return filepath.Join("testdata", "templates", name)
}

// MustReadTemplate reads a template by name or fails the test.
func MustReadTemplate(t *testing.T, name string) string {
	t.Helper()
	p := TemplatePath(name)
	absPath, _ := filepath.Abs(p)
	b, err := os.ReadFile(p)
	if err != nil {
		wd, _ := os.Getwd()
		t.Fatalf("failed to read template %q\n  path: %s\n  abs:  %s\n  cwd:  %s\n  error: %v", name, p, absPath, wd, err)
	}
	return string(b)
}

// ProviderTmplCfg feeds provider.tf.tmpl.
type ProviderTmplCfg struct {
	BaseURL      string
	Username     string
	Password     string
	Domain       string
	AuthStrategy string
}

// TestAccProviderConfig renders the provider block followed by extra HCL.
func TestAccProviderConfig(t *testing.T, cfg ProviderTmplCfg, extra ...string) string {
	t.Helper()

	tmpl, err := template.New(ProviderTmpl).Parse(MustReadTemplate(t, ProviderTmpl))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	for _, e := range extra {
		buf.WriteString("\n")
		buf.WriteString(e)
	}
	return buf.String()
}

// LiveEnv returns the TSS_* connection settings for live tests and whether
// the required ones are all set.
func LiveEnv() (baseURL, username, password, domain string, ok bool) {
	baseURL = strings.TrimSpace(os.Getenv("TSS_BASE_URL"))
	username = strings.TrimSpace(os.Getenv("TSS_USERNAME"))
	password = os.Getenv("TSS_PASSWORD")
	domain = strings.TrimSpace(os.Getenv("TSS_DOMAIN"))
	return baseURL, username, password, domain, baseURL != "" && username != "" && password != ""
}

// BuildLargeBody creates a JSON-like string embedding secrets, sized above
// the token response read limit.
func BuildLargeBody() string {
	var b strings.Builder
	b.WriteString(`{"padding":[`)
	chunks := 2 << 20 / 64
	for i := 0; i < chunks; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"access_token":"AAA`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","password":"PWD`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`"}`)
	}
	b.WriteString(`]}`)
	return b.String()
}

// FakeNetErr is a net.Error with a controllable Timeout result.
type FakeNetErr struct{ timeout bool }

func (e FakeNetErr) Error() string   { return "fake network error" }
func (e FakeNetErr) Timeout() bool   { return e.timeout }
func (e FakeNetErr) Temporary() bool { return e.timeout }

// NewFakeNetErr constructs a FakeNetErr with the provided timeout flag.
func NewFakeNetErr(timeout bool) FakeNetErr { return FakeNetErr{timeout: timeout} }
