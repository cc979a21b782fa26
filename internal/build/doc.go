// Package build ties one documentation build together: a registry, the
// declaration context that fills it, and the renderer that reads it.
//
// A Build is created per run and fed the declaration stream one entry at a
// time through Apply. Nothing is shared between builds.
package build
