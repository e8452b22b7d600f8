// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*credentialDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*credentialDataSource)(nil)

// NewCredentialDataSource returns the Terraform data source implementation for tss_credential.
func NewCredentialDataSource() datasource.DataSource { return &credentialDataSource{} }

type credentialDataSource struct {
	baseTSS
}

type credentialDataSourceModel struct {
	Identifier types.String `tfsdk:"identifier"`
	Value      types.String `tfsdk:"value"`
}

func (d *credentialDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_credential"
}

func (d *credentialDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Resolves one value from the configured Secret Server credential: a freshly issued OAuth2 access token or the base URL.",
		Attributes: map[string]schema.Attribute{
			"identifier": schema.StringAttribute{
				Optional:            true,
				Computed:            true,
				MarkdownDescription: "Which value to return: `token` (default) or `base_url`.",
				Validators: []validator.String{
					stringvalidator.OneOf(secretserver.SelectorNames()...),
				},
			},
			"value": schema.StringAttribute{
				Computed:            true,
				Sensitive:           true,
				MarkdownDescription: "The resolved value.",
			},
		},
	}
}

func (d *credentialDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.configureFrom(req.ProviderData, "Data Source", &resp.Diagnostics)
}

func (d *credentialDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data credentialDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() || !d.configured(&resp.Diagnostics) {
		return
	}

	identifier := stringOrDefault(data.Identifier, string(secretserver.SelectorToken))
	value, err := d.plugin.Backend(ctx, d.bag(identifier))
	if err != nil {
		appendResolveError(&resp.Diagnostics, "resolve tss_credential", err, "identifier")
		return
	}

	data.Identifier = types.StringValue(identifier)
	data.Value = types.StringValue(value)

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}
