// Package declare turns a flat stream of begin/add/end declarations into
// registry entries.
//
// Declarations arrive one at a time and do not repeat their parent path: a
// parameter simply follows the executable it belongs to. Context remembers
// the open package and the open executable or launch file so that each
// declaration knows where to attach. Callers must pair every Begin* with its
// End*; a missing End leaves the context open and later declarations attach
// to the wrong parent. Open reports that situation so the host can warn.
package declare

import (
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/model"
	"github.com/specialistvlad/rosdocgo/internal/registry"
)

// Context is the transient declaration state of a single build. It is not
// safe for concurrent use.
type Context struct {
	reg *registry.Registry

	pkg    *model.Package
	exec   *model.Executable
	launch *model.Launch
}

// New returns a Context that registers entities into reg.
func New(reg *registry.Registry) *Context {
	return &Context{reg: reg}
}

// Registry returns the registry the context writes to.
func (c *Context) Registry() *registry.Registry {
	return c.reg
}

// Open reports whether a package, executable or launch is still open.
func (c *Context) Open() bool {
	return c.pkg != nil || c.exec != nil || c.launch != nil
}

// BeginPackage registers a package and makes it current. The open executable
// or launch, if any, is closed.
func (c *Context) BeginPackage(name, description string, src *model.Source) (*model.Package, error) {
	c.End()
	pkg, err := c.reg.DeclarePackage(name, description)
	if err != nil {
		c.pkg = nil
		return nil, err
	}
	pkg.Source = src
	c.pkg = pkg
	return pkg, nil
}

// EndPackage closes the current package and anything open inside it. It is
// safe to call when nothing is open.
func (c *Context) EndPackage() {
	c.End()
	c.pkg = nil
}

// BeginExecutable registers an executable under the current package and
// makes it current. If registration fails the current entity is cleared so
// that following parameters are rejected instead of attaching elsewhere.
func (c *Context) BeginExecutable(exec *model.Executable) error {
	c.End()
	if c.pkg == nil {
		return fmt.Errorf("%w: executable %q declared outside a package", model.ErrNoActivePackage, exec.Name)
	}
	if err := c.reg.DeclareExecutable(c.pkg, exec); err != nil {
		return err
	}
	c.exec = exec
	return nil
}

// BeginLaunch registers a launch file under the current package and makes it
// current. Each name in execUsed is resolved against the executables declared
// so far; names that do not resolve are kept as raw labels.
func (c *Context) BeginLaunch(name, location, shortDescr, longDescr string, execUsed []string, src *model.Source) (*model.Launch, error) {
	c.End()
	if c.pkg == nil {
		return nil, fmt.Errorf("%w: launch %q declared outside a package", model.ErrNoActivePackage, name)
	}

	usages := make([]model.ExecUsage, 0, len(execUsed))
	for _, label := range execUsed {
		usage := model.ExecUsage{Label: label}
		if exec, err := c.reg.ExecutableByName(label); err == nil {
			usage.Executable = exec
		}
		usages = append(usages, usage)
	}

	launch := model.NewLaunch(name, location, shortDescr, longDescr, usages)
	launch.Source = src
	if err := c.reg.DeclareLaunch(c.pkg, launch); err != nil {
		return nil, err
	}
	c.launch = launch
	return launch, nil
}

// End closes the current executable or launch file. EndExecutable and
// EndLaunch are the same operation.
func (c *Context) End() {
	c.exec = nil
	c.launch = nil
}

// EndExecutable closes the current executable or launch file.
func (c *Context) EndExecutable() { c.End() }

// EndLaunch closes the current executable or launch file.
func (c *Context) EndLaunch() { c.End() }

// AddParameter appends p to the current executable. The return value reports
// whether an earlier parameter with the same name was replaced.
func (c *Context) AddParameter(p *model.Parameter) (bool, error) {
	if c.exec == nil {
		return false, fmt.Errorf("%w: parameter %q declared outside an executable", model.ErrNoActiveExecutable, p.Name)
	}
	return c.exec.AddParameter(p), nil
}

// AddArgument appends a to the current launch file. The return value reports
// whether an earlier argument with the same name was replaced.
func (c *Context) AddArgument(a *model.Parameter) (bool, error) {
	if c.launch == nil {
		return false, fmt.Errorf("%w: argument %q declared outside a launch file", model.ErrNoActiveLaunch, a.Name)
	}
	return c.launch.AddArgument(a), nil
}

// AddInterface builds the interface variant for spec and appends it to the
// current executable. Nothing is appended when the category is unsupported.
func (c *Context) AddInterface(spec model.InterfaceSpec) (model.Interface, error) {
	if c.exec == nil {
		return nil, fmt.Errorf("%w: interface %q declared outside an executable", model.ErrNoActiveExecutable, spec.Name)
	}
	iface, err := model.NewInterface(spec)
	if err != nil {
		return nil, err
	}
	c.exec.AddInterface(iface)
	return iface, nil
}
