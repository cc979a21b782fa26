package anchor

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
)

// Kind is the entity kind encoded in an anchor prefix.
type Kind string

const (
	KindPackage    Kind = "pkg"
	KindExecutable Kind = "exec"
	KindLaunch     Kind = "launch"
)

// Anchor is the structured form of a section identifier.
type Anchor struct {
	Kind Kind
	Name string
}

// String serializes the anchor into its canonical `<kind>_<name>` form.
func (a Anchor) String() string {
	return string(a.Kind) + "_" + a.Name
}

// Package returns the anchor of a package section.
func Package(name string) Anchor { return Anchor{Kind: KindPackage, Name: name} }

// Executable returns the anchor of an executable section.
func Executable(name string) Anchor { return Anchor{Kind: KindExecutable, Name: name} }

// Launch returns the anchor of a launch file section.
func Launch(name string) Anchor { return Anchor{Kind: KindLaunch, Name: name} }

// Parse splits a canonical identifier back into kind and name. The kind is
// everything before the first underscore; names may contain underscores.
func Parse(raw string) (Anchor, error) {
	prefix, name, ok := strings.Cut(raw, "_")
	if !ok || name == "" {
		return Anchor{}, fmt.Errorf("invalid anchor %q: expected <kind>_<name>", raw)
	}
	switch k := Kind(prefix); k {
	case KindPackage, KindExecutable, KindLaunch:
		return Anchor{Kind: k, Name: name}, nil
	default:
		return Anchor{}, fmt.Errorf("invalid anchor %q: unknown kind %q", raw, prefix)
	}
}

// Ref returns an inline node linking to a. The target is not checked.
func Ref(a Anchor) *doctree.Node {
	return doctree.Inline(doctree.Reference(a.Name, a.String()))
}

// RefPackage returns an inline link to the package section of name.
func RefPackage(name string) *doctree.Node { return Ref(Package(name)) }

// RefExecutable returns an inline link to the executable section of name.
func RefExecutable(name string) *doctree.Node { return Ref(Executable(name)) }

// RefLaunch returns an inline link to the launch file section of name.
func RefLaunch(name string) *doctree.Node { return Ref(Launch(name)) }
