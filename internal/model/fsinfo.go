// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Source, which links a declaration back to where it was
// written.
//
// Why store the position?
//
// Declarations arrive as a flat stream from many files. When a declaration is
// rejected (a duplicate executable, a parameter with no open executable) the
// only useful error message is one that points at the offending line.
package model

import "fmt"

// Source is the file position a declaration was read from.
type Source struct {
	FilePath string
	Line     int
}

// NewSource returns a Source for the given file and 1-based line. A zero line
// means the position inside the file is unknown.
func NewSource(filePath string, line int) *Source {
	return &Source{
		FilePath: filePath,
		Line:     line,
	}
}

// String renders the position as "file:line", or just "file" if the line is
// unknown. A nil Source renders as "<unknown>".
func (s *Source) String() string {
	if s == nil {
		return "<unknown>"
	}
	if s.Line <= 0 {
		return s.FilePath
	}
	return fmt.Sprintf("%s:%d", s.FilePath, s.Line)
}
