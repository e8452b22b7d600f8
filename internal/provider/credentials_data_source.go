// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/acedya/tss-credential-plugin/internal/secretserver"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*credentialsDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*credentialsDataSource)(nil)

// NewCredentialsDataSource returns the Terraform data source implementation for tss_credentials.
func NewCredentialsDataSource() datasource.DataSource { return &credentialsDataSource{} }

type credentialsDataSource struct {
	baseTSS
}

type credentialsDataSourceModel struct {
	Token     types.String `tfsdk:"token"`
	ServerURL types.String `tfsdk:"server_url"`
}

func (d *credentialsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_credentials"
}

func (d *credentialsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Resolves every output of the configured Secret Server credential at once.",
		Attributes: map[string]schema.Attribute{
			secretserver.OutputToken: schema.StringAttribute{
				Computed:            true,
				Sensitive:           true,
				MarkdownDescription: "A freshly issued OAuth2 access token.",
			},
			secretserver.OutputServerURL: schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The Secret Server base URL, as configured.",
			},
		},
	}
}

func (d *credentialsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.configureFrom(req.ProviderData, "Data Source", &resp.Diagnostics)
}

func (d *credentialsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data credentialsDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() || !d.configured(&resp.Diagnostics) {
		return
	}

	out, err := d.plugin.Outputs(ctx, d.bag(""))
	if err != nil {
		appendResolveError(&resp.Diagnostics, "resolve tss_credentials", err)
		return
	}

	data.Token = types.StringValue(out[secretserver.OutputToken])
	data.ServerURL = types.StringValue(out[secretserver.OutputServerURL])

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}
