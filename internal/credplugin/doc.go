// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

// Package credplugin describes the Secret Server resolver as a credential
// plugin for a job-orchestration platform: a name, the credential-form input
// definition, and a backend that turns the platform's parameter bag into a
// single value (or every value at once, for multi-variable injection).
//
// The adapters here only translate and validate input; all authentication
// goes through secretserver.Resolver.
package credplugin
