package registry

import (
	"fmt"
	"strings"
)

// Unresolved describes a launch usage whose label matches no declared
// executable, even after the whole declaration pass.
type Unresolved struct {
	Package string
	Launch  string
	Label   string
}

// String implements fmt.Stringer.
func (u Unresolved) String() string {
	return fmt.Sprintf("%s/%s -> %s", u.Package, u.Launch, u.Label)
}

// UnresolvedUsages walks every launch and reports the usages that still do
// not name a declared executable. These are not errors: they render as plain
// labels. The report exists so the host can tell the user about them.
func (r *Registry) UnresolvedUsages() []Unresolved {
	var out []Unresolved
	for _, pkg := range r.order {
		for _, launch := range pkg.Launches() {
			for _, usage := range launch.Usages() {
				if usage.Resolved() {
					continue
				}
				if _, ok := r.executables[usage.Label]; ok {
					continue
				}
				out = append(out, Unresolved{Package: pkg.Name, Launch: launch.Name, Label: usage.Label})
			}
		}
	}
	return out
}

// Summary returns a one-line description of the registry contents, used in
// debug logs.
func (r *Registry) Summary() string {
	names := make([]string, 0, len(r.order))
	for _, pkg := range r.order {
		names = append(names, pkg.Name)
	}
	return fmt.Sprintf("packages=[%s] executables=%d launches=%d",
		strings.Join(names, ","), len(r.executables), len(r.launches))
}
