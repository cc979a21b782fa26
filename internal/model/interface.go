// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the interface taxonomy: the closed set of communication
// shapes an executable can expose and the table rows each one produces.
//
// Why a closed sum type?
//
// The category label in a declaration is free text, but the set of shapes it
// may select is fixed. Funnelling every construction through NewInterface
// means an unknown label is rejected once, at declaration time, and every
// Interface value that exists afterwards is guaranteed to be one of the four
// variants below. The unexported marker method keeps other packages from
// adding a fifth.
package model

import (
	"fmt"
	"strings"
)

// Category labels recognised by NewInterface.
const (
	CategoryTopicIn    = "topic in"
	CategoryTopicOut   = "topic out"
	CategoryServiceIn  = "service in"
	CategoryServiceOut = "service out"
	CategoryAction     = "action"
)

// Endpoint is a type/description pair for one direction of an interface.
type Endpoint struct {
	Type        string
	Description string
}

// InterfaceSpec is the raw option set of an interface declaration.
type InterfaceSpec struct {
	Name        string
	Description string
	Category    string
	In          Endpoint
	Out         Endpoint
	Status      Endpoint
	Source      *Source
}

// InterfaceRow is one rendered row of an interface table. Type and
// Description are already placeholder-substituted.
type InterfaceRow struct {
	Label       string
	Type        string
	Description string
}

// Interface is a typed communication point exposed by an executable.
type Interface interface {
	Name() string
	Description() string
	// Category is the label as written in the declaration, used for display.
	Category() string
	// Rows returns the table rows for this variant, in display order.
	Rows() []InterfaceRow

	isInterface()
}

type interfaceBase struct {
	name        string
	description string
	category    string
}

func (b interfaceBase) Name() string        { return b.name }
func (b interfaceBase) Description() string { return b.description }
func (b interfaceBase) Category() string    { return b.category }
func (interfaceBase) isInterface()          {}

// InboundTopic is a topic the executable subscribes to.
type InboundTopic struct {
	interfaceBase
	In Endpoint
}

// Rows implements Interface.
func (t *InboundTopic) Rows() []InterfaceRow {
	return []InterfaceRow{row("In", t.In)}
}

// OutboundTopic is a topic the executable publishes.
type OutboundTopic struct {
	interfaceBase
	Out Endpoint
}

// Rows implements Interface.
func (t *OutboundTopic) Rows() []InterfaceRow {
	return []InterfaceRow{row("Out", t.Out)}
}

// Service is a request/response interface. "service in" and "service out"
// both produce a Service; the direction only shows up in the category label.
type Service struct {
	interfaceBase
	In  Endpoint
	Out Endpoint
}

// Rows implements Interface.
func (s *Service) Rows() []InterfaceRow {
	return []InterfaceRow{row("In", s.In), row("Out", s.Out)}
}

// Action is a goal/result/feedback interface.
type Action struct {
	interfaceBase
	Request Endpoint
	Result  Endpoint
	Status  Endpoint
}

// Rows implements Interface. An action always has exactly three rows.
func (a *Action) Rows() []InterfaceRow {
	return []InterfaceRow{
		row("Request", a.Request),
		row("Result", a.Result),
		row("Status", a.Status),
	}
}

func row(label string, e Endpoint) InterfaceRow {
	return InterfaceRow{
		Label:       label,
		Type:        OrPlaceholder(e.Type),
		Description: OrPlaceholder(e.Description),
	}
}

// NewInterface maps spec.Category onto a variant. Matching ignores case and
// surrounding whitespace.
func NewInterface(spec InterfaceSpec) (Interface, error) {
	base := interfaceBase{
		name:        spec.Name,
		description: spec.Description,
		category:    spec.Category,
	}

	switch strings.ToLower(strings.TrimSpace(spec.Category)) {
	case CategoryTopicIn:
		return &InboundTopic{interfaceBase: base, In: spec.In}, nil
	case CategoryTopicOut:
		return &OutboundTopic{interfaceBase: base, Out: spec.Out}, nil
	case CategoryServiceIn, CategoryServiceOut:
		return &Service{interfaceBase: base, In: spec.In, Out: spec.Out}, nil
	case CategoryAction:
		return &Action{interfaceBase: base, Request: spec.In, Result: spec.Out, Status: spec.Status}, nil
	default:
		return nil, fmt.Errorf("%w: %q on interface %q", ErrUnsupportedInterfaceCategory, spec.Category, spec.Name)
	}
}
