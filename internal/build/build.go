package build

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/anchor"
	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/declare"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/model"
	"github.com/specialistvlad/rosdocgo/internal/registry"
	"github.com/specialistvlad/rosdocgo/internal/render"
)

// ErrUnknownDeclaration is returned by Apply for a declaration kind it does
// not handle.
var ErrUnknownDeclaration = errors.New("unknown declaration kind")

// Options configures a Build.
type Options struct {
	Render render.Options
}

// Build holds the state of one documentation build.
type Build struct {
	registry *registry.Registry
	decl     *declare.Context
	renderer *render.Renderer
	shows    []string
}

// New creates an empty Build.
func New(opts Options) *Build {
	reg := registry.New()
	return &Build{
		registry: reg,
		decl:     declare.New(reg),
		renderer: render.New(reg, opts.Render),
	}
}

// Registry returns the registry the build fills.
func (b *Build) Registry() *registry.Registry {
	return b.registry
}

// Open reports whether a package, executable or launch file is still open.
func (b *Build) Open() bool {
	return b.decl.Open()
}

// Shows returns the package names requested by show declarations, in order.
func (b *Build) Shows() []string {
	return append([]string(nil), b.shows...)
}

// Apply executes one declaration. Errors are wrapped with the declaration and
// its source position; the build stays usable after an error.
func (b *Build) Apply(ctx context.Context, d *config.Declaration) error {
	if err := b.apply(ctx, d); err != nil {
		return fmt.Errorf("%s: %w", d, err)
	}
	return nil
}

func (b *Build) apply(ctx context.Context, d *config.Declaration) error {
	logger := ctxlog.FromContext(ctx)
	opts := d.Options

	switch d.Kind {
	case config.KindBeginPackage:
		_, err := b.decl.BeginPackage(d.Name, opts.Get(config.OptDescription), d.Source)
		return err

	case config.KindEndPackage:
		b.decl.EndPackage()
		return nil

	case config.KindBeginExecutable:
		exec := model.NewExecutable(d.Name,
			opts.Get(config.OptLocation),
			opts.Get(config.OptShortDescr),
			opts.Get(config.OptLongDescr),
		)
		exec.Source = d.Source
		return b.decl.BeginExecutable(exec)

	case config.KindEndExecutable:
		b.decl.EndExecutable()
		return nil

	case config.KindBeginLaunch:
		_, err := b.decl.BeginLaunch(d.Name,
			opts.Get(config.OptLocation),
			opts.Get(config.OptShortDescr),
			opts.Get(config.OptLongDescr),
			opts.List(config.OptExecUsed),
			d.Source,
		)
		return err

	case config.KindEndLaunch:
		b.decl.EndLaunch()
		return nil

	case config.KindParameter:
		replaced, err := b.decl.AddParameter(parameterFrom(d))
		if err != nil {
			return err
		}
		if replaced {
			logger.Warn("Parameter declared twice, keeping the last declaration.", "parameter", d.Name, "source", d.Source.String())
		}
		return nil

	case config.KindArgument:
		replaced, err := b.decl.AddArgument(parameterFrom(d))
		if err != nil {
			return err
		}
		if replaced {
			logger.Warn("Argument declared twice, keeping the last declaration.", "argument", d.Name, "source", d.Source.String())
		}
		return nil

	case config.KindInterface:
		_, err := b.decl.AddInterface(model.InterfaceSpec{
			Name:        d.Name,
			Description: opts.Get(config.OptDescription),
			Category:    opts.Get(config.OptCategory),
			In:          model.Endpoint{Type: opts.Get(config.OptInType), Description: opts.Get(config.OptInDescription)},
			Out:         model.Endpoint{Type: opts.Get(config.OptOutType), Description: opts.Get(config.OptOutDescription)},
			Status:      model.Endpoint{Type: opts.Get(config.OptStatusType), Description: opts.Get(config.OptStatusDescription)},
			Source:      d.Source,
		})
		return err

	case config.KindShowPackage:
		b.shows = append(b.shows, d.Name)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDeclaration, d.Kind)
	}
}

func parameterFrom(d *config.Declaration) *model.Parameter {
	return &model.Parameter{
		Name:        d.Name,
		Type:        d.Options.Get(config.OptType),
		Default:     d.Options.Get(config.OptDefault),
		Description: d.Options.Get(config.OptDescription),
		Source:      d.Source,
	}
}

// RenderPackage renders the named package.
func (b *Build) RenderPackage(name string) (*doctree.Node, error) {
	pkg, err := b.registry.Package(name)
	if err != nil {
		return nil, err
	}
	return b.renderer.Package(pkg), nil
}

// RenderAll renders every package in declaration order.
func (b *Build) RenderAll() []*doctree.Node {
	var out []*doctree.Node
	for _, pkg := range b.registry.Packages() {
		out = append(out, b.renderer.Package(pkg))
	}
	return out
}

// RefPackage returns an inline link to the named package.
func (b *Build) RefPackage(name string) *doctree.Node { return anchor.RefPackage(name) }

// RefExecutable returns an inline link to the named executable.
func (b *Build) RefExecutable(name string) *doctree.Node { return anchor.RefExecutable(name) }

// RefLaunch returns an inline link to the named launch file.
func (b *Build) RefLaunch(name string) *doctree.Node { return anchor.RefLaunch(name) }
