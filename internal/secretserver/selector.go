// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import "fmt"

// OutputSelector picks which value Resolve returns. The zero value selects
// the token.
type OutputSelector string

const (
	SelectorToken   OutputSelector = "token"
	SelectorBaseURL OutputSelector = "base_url"
)

// Selectors lists the valid selector values in display order.
var Selectors = []OutputSelector{SelectorToken, SelectorBaseURL}

// SelectorNames returns Selectors as plain strings.
func SelectorNames() []string {
	out := make([]string, len(Selectors))
	for i, s := range Selectors {
		out[i] = string(s)
	}
	return out
}

// ParseSelector converts a raw identifier; "" maps to SelectorToken.
func ParseSelector(s string) (OutputSelector, error) {
	return OutputSelector(s).normalize()
}

func (s OutputSelector) normalize() (OutputSelector, error) {
	switch s {
	case "", SelectorToken:
		return SelectorToken, nil
	case SelectorBaseURL:
		return SelectorBaseURL, nil
	}
	return "", validationError(KindUnknownSelector, []string{"identifier"},
		fmt.Sprintf("unknown identifier %q; valid values: %q, %q", string(s), SelectorToken, SelectorBaseURL))
}
