// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Launch and ExecUsage.
//
// Why keep unresolved usages?
//
// A launch file names the executables it starts by their bare name, and the
// declaration of that executable may come later in the stream or may not
// exist at all (a third-party node). Rather than failing, an unresolved usage
// keeps its raw label and is rendered verbatim.
package model

// ExecUsage is one executable started by a launch file. Exactly one of the two
// states holds: Executable is set (resolved) or it is nil and Label is the raw
// name as written.
type ExecUsage struct {
	Label      string
	Executable *Executable
}

// Resolved reports whether the usage points at a declared executable.
func (u ExecUsage) Resolved() bool {
	return u.Executable != nil
}

// Launch is a documented launch file.
type Launch struct {
	Name       string
	Package    string
	Location   string
	ShortDescr string
	LongDescr  string
	Source     *Source

	arguments []*Parameter
	usages    []ExecUsage
}

// NewLaunch creates a launch file with the given executable usages.
func NewLaunch(name, location, shortDescr, longDescr string, usages []ExecUsage) *Launch {
	return &Launch{
		Name:       name,
		Location:   location,
		ShortDescr: shortDescr,
		LongDescr:  longDescr,
		usages:     usages,
	}
}

// AddArgument appends a. An argument with the same name replaces the earlier
// one in place; the return value reports whether that happened.
func (l *Launch) AddArgument(a *Parameter) (replaced bool) {
	l.arguments, replaced = upsertParameter(l.arguments, a)
	return replaced
}

// Arguments returns the arguments in declaration order.
func (l *Launch) Arguments() []*Parameter {
	return l.arguments
}

// Usages returns the executable usages in declaration order.
func (l *Launch) Usages() []ExecUsage {
	return l.usages
}
