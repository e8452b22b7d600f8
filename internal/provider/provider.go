// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/acedya/tss-credential-plugin/internal/credplugin"
	"github.com/acedya/tss-credential-plugin/internal/secretserver"
	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/ephemeral"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure TSSProvider satisfies various provider interfaces.
var _ provider.Provider = &TSSProvider{}
var _ provider.ProviderWithValidateConfig = &TSSProvider{}
var _ provider.ProviderWithEphemeralResources = &TSSProvider{}

// TSSProvider defines the provider implementation.
type TSSProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// resolver issues tokens for every data source and ephemeral resource.
	resolver *secretserver.Resolver
	// plugin adapts resolver to the credential plugin entry points.
	plugin *credplugin.Plugin
	// params are the resolved connection settings.
	params secretserver.ConnectionParameters
}

// TSSProviderModel describes the provider data model.
type TSSProviderModel struct {
	// Base Configuration
	BaseURL      types.String `tfsdk:"base_url"`
	AuthStrategy types.String `tfsdk:"auth_strategy"`

	// Application user
	Username types.String `tfsdk:"username"`
	Password types.String `tfsdk:"password"`
	Domain   types.String `tfsdk:"domain"`

	// HTTP
	HTTPTimeoutSeconds types.Int64 `tfsdk:"http_timeout_seconds"`
}

func (p *TSSProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "tss"
	resp.Version = p.version
}

func (p *TSSProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Delinea Secret Server provider. Exchanges an application user's credentials for an OAuth2 access token.",
		Attributes: map[string]schema.Attribute{
			attrBaseURL: schema.StringAttribute{
				MarkdownDescription: "The base URL of Secret Server, e.g. `https://myserver/SecretServer` or `https://mytenant.secretservercloud.com`. Can also be set with `TSS_BASE_URL`.",
				Optional:            true,
			},
			attrAuthStrategy: schema.StringAttribute{
				MarkdownDescription: "How tokens are obtained. `direct` posts the password grant itself, `delegated` goes through an authorizer. Defaults to `direct`. Can also be set with `TSS_AUTH_STRATEGY`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(string(secretserver.StrategyDirect), string(secretserver.StrategyDelegated)),
				},
			},
			attrUsername: schema.StringAttribute{
				MarkdownDescription: "The (application) user username. Can also be set with `TSS_USERNAME`.",
				Optional:            true,
			},
			attrPassword: schema.StringAttribute{
				MarkdownDescription: "The corresponding password. Can also be set with `TSS_PASSWORD`.",
				Optional:            true,
				Sensitive:           true,
			},
			attrDomain: schema.StringAttribute{
				MarkdownDescription: "The (application) user domain. Omitted from the token request when empty. Can also be set with `TSS_DOMAIN`.",
				Optional:            true,
			},
			attrHTTPTimeoutSeconds: schema.Int64Attribute{
				MarkdownDescription: "Timeout for each token request, in seconds. Defaults to 30.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(minHTTPTimeoutSeconds, maxHTTPTimeoutSeconds),
				},
			},
		},
	}
}

// ValidateConfig checks what can be checked from static configuration alone;
// environment fallbacks are resolved in Configure.
func (p *TSSProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data TSSProviderModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if !data.BaseURL.IsNull() && !data.BaseURL.IsUnknown() {
		if problem := checkBaseURL(data.BaseURL.ValueString()); problem != "" {
			resp.Diagnostics.AddAttributeError(path.Root(attrBaseURL), "Invalid Base URL Configuration.", secretserver.RedactSecrets(problem))
		}
	}
}

func (p *TSSProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data TSSProviderModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	rc := deriveResolvedConfig(data)
	if rc.password != "" {
		ctx = tflog.MaskAllFieldValuesStrings(ctx, rc.password)
		ctx = tflog.MaskMessageStrings(ctx, rc.password)
	}

	if errs := validateResolvedConfig(rc); len(errs) > 0 {
		for _, e := range errs {
			if e.attr == "" {
				resp.Diagnostics.AddError(e.summary, e.detail)
				continue
			}
			resp.Diagnostics.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
		}
		return
	}

	resolver, err := p.newResolver(buildHTTPClient(rc), rc)
	if err != nil {
		resp.Diagnostics.AddError("Error creating Secret Server resolver", secretserver.RedactSecrets(err.Error()))
		return
	}

	p.resolver = resolver
	p.plugin = credplugin.New(resolver)
	p.params = rc.connection()

	tflog.Debug(ctx, "configured Secret Server provider", map[string]interface{}{
		"base_url":             rc.baseURL,
		"username":             rc.username,
		"domain_set":           rc.domain != "",
		"auth_strategy":        rc.authStrategy,
		"http_timeout_seconds": rc.httpTimeoutSeconds,
	})

	resp.DataSourceData = p
	resp.EphemeralResourceData = p
}

func (p *TSSProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *TSSProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewCredentialDataSource,
		NewCredentialsDataSource,
	}
}

func (p *TSSProvider) EphemeralResources(_ context.Context) []func() ephemeral.EphemeralResource {
	return []func() ephemeral.EphemeralResource{
		NewTokenEphemeralResource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &TSSProvider{
			version: version,
		}
	}
}
