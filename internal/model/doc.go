// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of documented ROS
// software: packages, the executables and launch files they ship, and the
// parameters, arguments and communication interfaces attached to them.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Package: The top-level grouping. It owns its executables and launch
//     files and remembers the order in which they were declared, because that
//     order drives the table of contents.
//
//   - Executable: A runnable unit. It carries an ordered list of Parameters and
//     an ordered list of Interfaces (topics, services, actions).
//
//   - Launch: A launch configuration. It carries Arguments (same shape as a
//     Parameter) and a list of ExecUsages, the executables it starts. A usage
//     is either resolved to an Executable or kept as a raw label.
//
//   - Interface: A closed sum type with four variants (InboundTopic,
//     OutboundTopic, Service, Action). NewInterface is the only way to build
//     one and it rejects unknown category labels.
//
//   - Source: Metadata linking an entity back to the file it was declared in.
//
// Why a separate model package?
//
// Everything here is plain data plus the invariants that relate it
// (uniqueness inside a package, the interface taxonomy). Nothing in this
// package performs I/O or logs, which keeps the registry, the declaration
// context and the renderer free to compose it in whichever order the
// declaration stream dictates.
package model
