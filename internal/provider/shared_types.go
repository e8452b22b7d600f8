// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"github.com/acedya/tss-credential-plugin/internal/credplugin"
	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// baseTSS is embedded by every data source and ephemeral resource.
type baseTSS struct {
	resolver *secretserver.Resolver
	plugin   *credplugin.Plugin
	params   secretserver.ConnectionParameters
}

// bag renders the configured connection as the credential plugin's
// parameter bag, with identifier as the output selector.
func (b *baseTSS) bag(identifier string) credplugin.Params {
	return credplugin.Params{
		secretserver.FieldBaseURL:  b.params.BaseURL,
		secretserver.FieldUsername: b.params.Username,
		secretserver.FieldPassword: b.params.Password,
		secretserver.FieldDomain:   b.params.Domain,
		credplugin.FieldIdentifier: identifier,
	}
}
