// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Package, the top-level grouping of executables and launch
// files.
//
// Why keep both a map and a slice?
//
// Lookups by name need the map; the table of contents needs the declaration
// order, which a Go map does not keep.
package model

import "fmt"

// Package is a documented ROS package.
type Package struct {
	Name        string
	Description string
	Source      *Source

	executables  []*Executable
	launches     []*Launch
	execByName   map[string]*Executable
	launchByName map[string]*Launch
}

// NewPackage creates an empty package.
func NewPackage(name, description string) *Package {
	return &Package{
		Name:         name,
		Description:  description,
		execByName:   make(map[string]*Executable),
		launchByName: make(map[string]*Launch),
	}
}

// AddExecutable attaches e to the package. The name must be unique among the
// package's executables.
func (p *Package) AddExecutable(e *Executable) error {
	if _, exists := p.execByName[e.Name]; exists {
		return fmt.Errorf("%w: executable %q already declared in package %q", ErrDuplicateEntity, e.Name, p.Name)
	}
	e.Package = p.Name
	p.execByName[e.Name] = e
	p.executables = append(p.executables, e)
	return nil
}

// AddLaunch attaches l to the package. The name must be unique among the
// package's launch files.
func (p *Package) AddLaunch(l *Launch) error {
	if _, exists := p.launchByName[l.Name]; exists {
		return fmt.Errorf("%w: launch %q already declared in package %q", ErrDuplicateEntity, l.Name, p.Name)
	}
	l.Package = p.Name
	p.launchByName[l.Name] = l
	p.launches = append(p.launches, l)
	return nil
}

// Executable returns the executable with the given name, if declared here.
func (p *Package) Executable(name string) (*Executable, bool) {
	e, ok := p.execByName[name]
	return e, ok
}

// Launch returns the launch file with the given name, if declared here.
func (p *Package) Launch(name string) (*Launch, bool) {
	l, ok := p.launchByName[name]
	return l, ok
}

// Executables returns the executables in declaration order.
func (p *Package) Executables() []*Executable {
	return p.executables
}

// Launches returns the launch files in declaration order.
func (p *Package) Launches() []*Launch {
	return p.launches
}
