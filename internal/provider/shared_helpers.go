// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// configureFrom copies the configured resolver out of the provider data.
// A nil providerData is not an error: the framework configures data sources
// before the provider during validation.
func (b *baseTSS) configureFrom(providerData any, kind string, diags *diag.Diagnostics) {
	if providerData == nil {
		return
	}

	p, ok := providerData.(*TSSProvider)
	if !ok {
		diags.AddError(
			fmt.Sprintf("Unexpected %s Configure Type", kind),
			fmt.Sprintf("Expected *TSSProvider, got: %T. Please report this issue to the provider developers.", providerData),
		)
		return
	}

	b.resolver = p.resolver
	b.plugin = p.plugin
	b.params = p.params
}

// configured reports whether Configure ran with provider data, adding an
// error otherwise.
func (b *baseTSS) configured(diags *diag.Diagnostics) bool {
	if b.resolver != nil && b.plugin != nil {
		return true
	}
	diags.AddError(
		"Unconfigured Secret Server provider",
		"The provider was not configured before use. Please report this issue to the provider developers.",
	)
	return false
}

// stringOrDefault returns the known value of s, or def when s is null, unknown or empty.
func stringOrDefault(s types.String, def string) string {
	if s.IsNull() || s.IsUnknown() || s.ValueString() == "" {
		return def
	}
	return s.ValueString()
}
