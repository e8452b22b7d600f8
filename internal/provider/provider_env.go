// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

// envFallbacks lists, per attribute, the environment variables consulted in
// order when the attribute is not set in HCL.
var envFallbacks = map[string][]string{
	attrBaseURL:      {envBaseURL, envServerURL},
	attrUsername:     {envUsername},
	attrPassword:     {envPassword},
	attrDomain:       {envDomain},
	attrAuthStrategy: {envAuthStrategy},
}

// readAttr returns the HCL value of attr when it is known, even if empty.
// Otherwise the first non-empty environment fallback wins.
func readAttr(s types.String, attr string) string {
	if !s.IsNull() && !s.IsUnknown() {
		return s.ValueString()
	}
	for _, env := range envFallbacks[attr] {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

func readInt64Default(v types.Int64, def int) int {
	if !v.IsNull() && !v.IsUnknown() {
		return int(v.ValueInt64())
	}
	return def
}
