package config

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/rosdocgo/internal/model"
)

// Kind identifies a declaration.
type Kind string

const (
	KindBeginPackage    Kind = "begin_package"
	KindEndPackage      Kind = "end_package"
	KindBeginExecutable Kind = "begin_executable"
	KindEndExecutable   Kind = "end_executable"
	KindBeginLaunch     Kind = "begin_launch"
	KindEndLaunch       Kind = "end_launch"
	KindParameter       Kind = "parameter"
	KindArgument        Kind = "argument"
	KindInterface       Kind = "interface"
	KindShowPackage     Kind = "show_package"
)

// Option keys shared by the loaders.
const (
	OptDescription       = "description"
	OptLocation          = "location"
	OptShortDescr        = "short_descr"
	OptLongDescr         = "long_descr"
	OptExecUsed          = "exec_used"
	OptType              = "type"
	OptDefault           = "default"
	OptCategory          = "category"
	OptInType            = "in_type"
	OptInDescription     = "in_description"
	OptOutType           = "out_type"
	OptOutDescription    = "out_description"
	OptStatusType        = "status_type"
	OptStatusDescription = "status_description"
)

// Options holds the string-valued options of a declaration.
type Options map[string]string

// Get returns the option for key, or "" when it is absent.
func (o Options) Get(key string) string {
	return o[key]
}

// List splits a comma separated option. Items are trimmed and empty items are
// dropped, so "a, b,,c " yields [a b c].
func (o Options) List(key string) []string {
	var out []string
	for _, item := range strings.Split(o[key], ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Declaration is one entry of the declaration stream.
type Declaration struct {
	Kind    Kind
	Name    string
	Options Options
	Source  *model.Source
}

// String renders the declaration for log messages, e.g.
// `begin_executable "planner" (nav.hcl:3)`.
func (d *Declaration) String() string {
	return fmt.Sprintf("%s %q (%s)", d.Kind, d.Name, d.Source)
}
