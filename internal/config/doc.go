// Package config defines the format-agnostic declaration stream the
// application consumes, along with the Loader interface that produces it.
//
// A source file, whatever its syntax, is flattened into an ordered list of
// Declaration values: begin/end markers for packages, executables and launch
// files, leaf declarations for parameters, arguments and interfaces, and
// show requests. The stream is the single input of internal/build. Concrete
// loaders live in separate packages (internal/hcl, internal/rst).
package config
