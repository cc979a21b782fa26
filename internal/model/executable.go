// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Executable, a runnable unit documented with parameters
// and communication interfaces.
package model

// Executable is a documented ROS node binary.
type Executable struct {
	Name       string
	Package    string
	Location   string
	ShortDescr string
	LongDescr  string
	Source     *Source

	parameters []*Parameter
	interfaces []Interface
}

// NewExecutable creates an executable with no parameters or interfaces.
func NewExecutable(name, location, shortDescr, longDescr string) *Executable {
	return &Executable{
		Name:       name,
		Location:   location,
		ShortDescr: shortDescr,
		LongDescr:  longDescr,
	}
}

// AddParameter appends p. A parameter with the same name replaces the earlier
// one in place; the return value reports whether that happened.
func (e *Executable) AddParameter(p *Parameter) (replaced bool) {
	e.parameters, replaced = upsertParameter(e.parameters, p)
	return replaced
}

// AddInterface appends iface.
func (e *Executable) AddInterface(iface Interface) {
	e.interfaces = append(e.interfaces, iface)
}

// Parameters returns the parameters in declaration order.
func (e *Executable) Parameters() []*Parameter {
	return e.parameters
}

// Interfaces returns the interfaces in declaration order.
func (e *Executable) Interfaces() []Interface {
	return e.interfaces
}
