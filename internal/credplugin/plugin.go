// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package credplugin

import (
	"context"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
)

// Name is the registered plugin name.
const Name = "Delinea Secret Server"

// Params is the parameter bag handed over by the platform: every field and
// metadata value keyed by its id.
type Params map[string]string

// Connection extracts the typed connection parameters from the bag.
func (p Params) Connection() secretserver.ConnectionParameters {
	return secretserver.ConnectionParameters{
		BaseURL:  p[secretserver.FieldBaseURL],
		Username: p[secretserver.FieldUsername],
		Password: p[secretserver.FieldPassword],
		Domain:   p[secretserver.FieldDomain],
	}
}

// Selector returns the raw identifier metadata. It is validated by the
// resolver; an absent identifier selects the token.
func (p Params) Selector() secretserver.OutputSelector {
	return secretserver.OutputSelector(p[FieldIdentifier])
}

// BackendFunc resolves one value from a parameter bag.
type BackendFunc func(ctx context.Context, p Params) (string, error)

// Plugin is the named capability registered with the platform.
type Plugin struct {
	Name    string
	Inputs  InputDefinition
	Backend BackendFunc

	resolver *secretserver.Resolver
}

// New registers r under Name with the Secret Server input definition.
func New(r *secretserver.Resolver) *Plugin {
	p := &Plugin{Name: Name, Inputs: Inputs, resolver: r}
	p.Backend = p.resolve
	return p
}

func (p *Plugin) resolve(ctx context.Context, params Params) (string, error) {
	return p.resolver.Resolve(ctx, params.Connection(), params.Selector())
}

// Outputs is the mapping variant of Backend: {"token": .., "server_url": ..}.
// The identifier, if any, is ignored.
func (p *Plugin) Outputs(ctx context.Context, params Params) (map[string]string, error) {
	return p.resolver.ResolveAll(ctx, params.Connection())
}
