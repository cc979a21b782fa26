// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Parameter, the shape shared by executable parameters and
// launch arguments.
package model

// Placeholder is rendered in place of any missing value so that no table cell
// is ever empty.
const Placeholder = "-"

// Parameter is a named, optionally typed and defaulted configuration value.
// Launch arguments use the same type. An empty field means "not declared".
type Parameter struct {
	Name        string
	Type        string
	Default     string
	Description string
	Source      *Source
}

// OrPlaceholder returns s, or Placeholder if s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// upsertParameter appends p to params, or replaces an existing entry with the
// same name in place. It reports whether an entry was replaced.
func upsertParameter(params []*Parameter, p *Parameter) ([]*Parameter, bool) {
	for i, existing := range params {
		if existing.Name == p.Name {
			params[i] = p
			return params, true
		}
	}
	return append(params, p), false
}
