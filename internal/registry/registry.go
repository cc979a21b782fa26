package registry

import (
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/model"
)

// Registry holds every package, executable and launch file declared during a
// single build.
type Registry struct {
	packages    map[string]*model.Package
	order       []*model.Package
	executables map[string]*model.Executable
	launches    map[string]*model.Launch
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		packages:    make(map[string]*model.Package),
		executables: make(map[string]*model.Executable),
		launches:    make(map[string]*model.Launch),
	}
}

// DeclarePackage creates and registers a package.
func (r *Registry) DeclarePackage(name, description string) (*model.Package, error) {
	if _, exists := r.packages[name]; exists {
		return nil, fmt.Errorf("%w: package %q already declared", model.ErrDuplicateEntity, name)
	}
	pkg := model.NewPackage(name, description)
	r.packages[name] = pkg
	r.order = append(r.order, pkg)
	return pkg, nil
}

// Package returns the package with the given name.
func (r *Registry) Package(name string) (*model.Package, error) {
	pkg, ok := r.packages[name]
	if !ok {
		return nil, fmt.Errorf("%w: package %q", model.ErrUnknownEntity, name)
	}
	return pkg, nil
}

// Packages returns every package in declaration order.
func (r *Registry) Packages() []*model.Package {
	return r.order
}

// DeclareExecutable attaches exec to pkg and indexes it globally. The name
// must be unique both within pkg and across all packages.
func (r *Registry) DeclareExecutable(pkg *model.Package, exec *model.Executable) error {
	if other, exists := r.executables[exec.Name]; exists {
		return fmt.Errorf("%w: executable %q already declared in package %q", model.ErrDuplicateEntity, exec.Name, other.Package)
	}
	if err := pkg.AddExecutable(exec); err != nil {
		return err
	}
	r.executables[exec.Name] = exec
	return nil
}

// DeclareLaunch attaches launch to pkg and indexes it globally, with the same
// uniqueness rules as DeclareExecutable.
func (r *Registry) DeclareLaunch(pkg *model.Package, launch *model.Launch) error {
	if other, exists := r.launches[launch.Name]; exists {
		return fmt.Errorf("%w: launch %q already declared in package %q", model.ErrDuplicateEntity, launch.Name, other.Package)
	}
	if err := pkg.AddLaunch(launch); err != nil {
		return err
	}
	r.launches[launch.Name] = launch
	return nil
}

// ExecutableByName looks an executable up in the global index.
func (r *Registry) ExecutableByName(name string) (*model.Executable, error) {
	exec, ok := r.executables[name]
	if !ok {
		return nil, fmt.Errorf("%w: executable %q", model.ErrUnknownEntity, name)
	}
	return exec, nil
}

// LaunchByName looks a launch file up in the global index.
func (r *Registry) LaunchByName(name string) (*model.Launch, error) {
	launch, ok := r.launches[name]
	if !ok {
		return nil, fmt.Errorf("%w: launch %q", model.ErrUnknownEntity, name)
	}
	return launch, nil
}
