// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package credplugin

import (
	"encoding/json"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// FieldIdentifier is the metadata key selecting the output value.
const FieldIdentifier = "identifier"

// Field is one entry of the credential form.
type Field struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	HelpText string   `json:"help_text,omitempty"`
	Type     string   `json:"type"`
	Secret   bool     `json:"secret,omitempty"`
	Choices  []string `json:"choices,omitempty"`
	Default  string   `json:"default,omitempty"`
}

// InputDefinition is the credential form: fields are filled in once when the
// credential is created, metadata every time a target field is linked to it.
type InputDefinition struct {
	Fields   []Field  `json:"fields"`
	Metadata []Field  `json:"metadata"`
	Required []string `json:"required"`
}

// Inputs is the input definition of the Secret Server credential.
var Inputs = InputDefinition{
	Fields: []Field{
		{
			ID:       secretserver.FieldBaseURL,
			Label:    "Secret Server URL",
			HelpText: "The base URL of Secret Server, e.g. https://myserver/SecretServer or https://mytenant.secretservercloud.com",
			Type:     "string",
		},
		{
			ID:       secretserver.FieldUsername,
			Label:    "Username",
			HelpText: "The (application) user username",
			Type:     "string",
		},
		{
			ID:       secretserver.FieldDomain,
			Label:    "Domain",
			HelpText: "The (application) user domain (optional)",
			Type:     "string",
		},
		{
			ID:       secretserver.FieldPassword,
			Label:    "Password",
			HelpText: "The corresponding password",
			Type:     "string",
			Secret:   true,
		},
	},
	Metadata: []Field{
		{
			ID:       FieldIdentifier,
			Label:    "Output value",
			HelpText: "Select which value to return: the OAuth2 token or the Secret Server base URL.",
			Type:     "string",
			Choices:  secretserver.SelectorNames(),
			Default:  string(secretserver.SelectorToken),
		},
	},
	Required: []string{
		secretserver.FieldBaseURL,
		secretserver.FieldUsername,
		secretserver.FieldPassword,
		FieldIdentifier,
	},
}

// JSON renders the definition in the platform's input format.
func (d InputDefinition) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// SecretFields returns the ids of every field marked secret.
func (d InputDefinition) SecretFields() []string {
	var out []string
	for _, f := range d.Fields {
		if f.Secret {
			out = append(out, f.ID)
		}
	}
	return out
}
