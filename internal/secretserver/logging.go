// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const logSubsystem = "secretserver"

// withLogging scopes ctx to the secretserver log subsystem and masks the
// password in both messages and field values before anything is logged.
func withLogging(ctx context.Context, p ConnectionParameters, strategy Strategy) context.Context {
	ctx = tflog.NewSubsystem(ctx, logSubsystem)
	if p.Password != "" {
		ctx = tflog.SubsystemMaskAllFieldValuesStrings(ctx, logSubsystem, p.Password)
		ctx = tflog.SubsystemMaskMessageStrings(ctx, logSubsystem, p.Password)
	}
	ctx = tflog.SubsystemSetField(ctx, logSubsystem, "base_url", p.BaseURL)
	ctx = tflog.SubsystemSetField(ctx, logSubsystem, "username", p.Username)
	ctx = tflog.SubsystemSetField(ctx, logSubsystem, "strategy", string(strategy))
	return ctx
}

// maskToken hides a freshly issued token from any later log line on ctx.
func maskToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	ctx = tflog.SubsystemMaskAllFieldValuesStrings(ctx, logSubsystem, token)
	return tflog.SubsystemMaskMessageStrings(ctx, logSubsystem, token)
}
