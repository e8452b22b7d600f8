// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"time"

	"github.com/hashicorp/terraform-plugin-framework/ephemeral"
	"github.com/hashicorp/terraform-plugin-framework/ephemeral/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ ephemeral.EphemeralResource = (*tokenEphemeralResource)(nil)
var _ ephemeral.EphemeralResourceWithConfigure = (*tokenEphemeralResource)(nil)

// NewTokenEphemeralResource returns the ephemeral resource implementation for tss_token.
// The token it issues is never written to plan or state.
func NewTokenEphemeralResource() ephemeral.EphemeralResource { return &tokenEphemeralResource{} }

type tokenEphemeralResource struct {
	baseTSS
}

type tokenEphemeralResourceModel struct {
	AccessToken types.String `tfsdk:"access_token"`
	BaseURL     types.String `tfsdk:"base_url"`
	ExpiresAt   types.String `tfsdk:"expires_at"`
}

func (r *tokenEphemeralResource) Metadata(_ context.Context, req ephemeral.MetadataRequest, resp *ephemeral.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_token"
}

func (r *tokenEphemeralResource) Schema(_ context.Context, _ ephemeral.SchemaRequest, resp *ephemeral.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Issues a Secret Server OAuth2 access token for the duration of a Terraform run.",
		Attributes: map[string]schema.Attribute{
			"access_token": schema.StringAttribute{
				Computed:            true,
				Sensitive:           true,
				MarkdownDescription: "The issued access token.",
			},
			"base_url": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The Secret Server base URL the token is valid for.",
			},
			"expires_at": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "RFC 3339 expiry of the token, from the server's `expires_in`. Null when the server does not advertise one.",
			},
		},
	}
}

func (r *tokenEphemeralResource) Configure(_ context.Context, req ephemeral.ConfigureRequest, resp *ephemeral.ConfigureResponse) {
	r.configureFrom(req.ProviderData, "Ephemeral Resource", &resp.Diagnostics)
}

func (r *tokenEphemeralResource) Open(ctx context.Context, req ephemeral.OpenRequest, resp *ephemeral.OpenResponse) {
	var data tokenEphemeralResourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() || !r.configured(&resp.Diagnostics) {
		return
	}

	tok, err := r.resolver.Token(ctx, r.params)
	if err != nil {
		appendResolveError(&resp.Diagnostics, "open tss_token", err)
		return
	}

	data.AccessToken = types.StringValue(tok.AccessToken)
	data.BaseURL = types.StringValue(r.params.BaseURL)
	data.ExpiresAt = expiresAt(tok.Expiry)
	resp.Diagnostics.Append(resp.Result.Set(ctx, &data)...)
}

// expiresAt renders expiry as RFC 3339 UTC, null when unknown.
func expiresAt(expiry time.Time) types.String {
	if expiry.IsZero() {
		return types.StringNull()
	}
	return types.StringValue(expiry.UTC().Format(time.RFC3339))
}
