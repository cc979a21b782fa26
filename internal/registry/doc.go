// Package registry is the entity store for one documentation build.
//
// The Registry maps package names to packages and keeps two process-wide
// indexes, one for executables and one for launch files. The global indexes
// exist because launch files and inline references name their targets by
// bare name, without saying which package they live in. For that lookup to
// be unambiguous the registry enforces global uniqueness of executable and
// launch names, on top of the per-package uniqueness the model enforces.
//
// The registry is populated while the declaration stream is processed and
// only read afterwards. It holds no locks: each build owns its own instance.
package registry
