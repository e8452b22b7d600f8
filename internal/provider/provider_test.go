// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
)

// testAccPreCheck validates the live Secret Server settings used by
// acceptance tests that talk to a real server.
func testAccPreCheck(t *testing.T) {
	if v := os.Getenv(envBaseURL); v == "" {
		t.Fatal("TSS_BASE_URL must be set for acceptance tests")
	} else {
		u, err := url.Parse(v)
		if err != nil {
			t.Fatalf("TSS_BASE_URL is not a valid URL: %v", err)
		}
		if u.Scheme != "https" {
			t.Fatal("TSS_BASE_URL must use https scheme")
		}
		if u.Host == "" {
			t.Fatal("TSS_BASE_URL must include a host (e.g., https://myserver/SecretServer)")
		}
		if u.User != nil {
			t.Fatal("TSS_BASE_URL must not include credentials")
		}
	}

	if v := os.Getenv(envUsername); v == "" {
		t.Fatal("TSS_USERNAME must be set for acceptance tests")
	} else if strings.ContainsAny(v, " \t\r\n") {
		t.Fatal("TSS_USERNAME must not contain whitespace")
	}

	if v := os.Getenv(envPassword); v == "" {
		t.Fatal("TSS_PASSWORD must be set for acceptance tests")
	}
}

// Provider factory for acceptance tests
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"tss": providerserver.NewProtocol6WithError(New("test")()),
}

func TestProvider_Metadata(t *testing.T) {
	p := New("1.2.3")()
	var resp provider.MetadataResponse
	p.Metadata(context.Background(), provider.MetadataRequest{}, &resp)
	if resp.TypeName != "tss" {
		t.Fatalf("expected type name tss, got %q", resp.TypeName)
	}
	if resp.Version != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", resp.Version)
	}
}

func TestProvider_Schema(t *testing.T) {
	p := New("test")()
	var resp provider.SchemaResponse
	p.Schema(context.Background(), provider.SchemaRequest{}, &resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("unexpected diagnostics: %v", resp.Diagnostics)
	}

	for _, name := range []string{attrBaseURL, attrUsername, attrPassword, attrDomain, attrAuthStrategy, attrHTTPTimeoutSeconds} {
		a, ok := resp.Schema.Attributes[name]
		if !ok {
			t.Fatalf("missing attribute %q", name)
		}
		if !a.IsOptional() {
			t.Fatalf("attribute %q must be optional so env fallbacks apply", name)
		}
	}
	if !resp.Schema.Attributes[attrPassword].IsSensitive() {
		t.Fatal("password must be sensitive")
	}
	if resp.Schema.Attributes[attrUsername].IsSensitive() {
		t.Fatal("username should not be sensitive")
	}
}

func TestProvider_Registrations(t *testing.T) {
	p := New("test")().(*TSSProvider)
	ctx := context.Background()

	if got := len(p.DataSources(ctx)); got != 2 {
		t.Fatalf("expected 2 data sources, got %d", got)
	}
	if got := len(p.EphemeralResources(ctx)); got != 1 {
		t.Fatalf("expected 1 ephemeral resource, got %d", got)
	}
	if got := len(p.Resources(ctx)); got != 0 {
		t.Fatalf("expected no managed resources, got %d", got)
	}
}
