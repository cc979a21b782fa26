// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file declares the error kinds shared by the registry, the declaration
// context and the renderer. Callers wrap them with fmt.Errorf("%w: ...") and
// match them with errors.Is.
package model

import "errors"

var (
	// ErrDuplicateEntity is returned when a package, executable or launch name
	// is already registered.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrUnknownEntity is returned when a lookup by name finds nothing.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrNoActivePackage is returned when an executable or launch is declared
	// outside of a package.
	ErrNoActivePackage = errors.New("no active package")

	// ErrNoActiveExecutable is returned when a parameter or interface is
	// declared outside of an executable.
	ErrNoActiveExecutable = errors.New("no active executable")

	// ErrNoActiveLaunch is returned when an argument is declared outside of a
	// launch file.
	ErrNoActiveLaunch = errors.New("no active launch")

	// ErrUnsupportedInterfaceCategory is returned by NewInterface for a
	// category label outside the taxonomy.
	ErrUnsupportedInterfaceCategory = errors.New("unsupported interface category")
)
