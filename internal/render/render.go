// Package render turns registry entities into document trees.
//
// Every function here is pure: it reads the entities it is given (and, for
// launch files, looks executables up through a Resolver) and returns a fresh
// tree. Rendering an unchanged registry twice yields equal trees.
package render

import (
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/anchor"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/model"
)

// Section headings.
const (
	headingTOC         = "Table of content"
	headingExecutables = "Executable files description"
	headingLaunches    = "Launch files description"
	headingParameters  = "Parameters description"
	headingExample     = "Example configuration"
	headingInterfaces  = "Interfaces description"
	headingArguments   = "Arguments description"
	headingExecUsed    = "Executable used in launch file"
)

// Resolver looks executables up by bare name. *registry.Registry satisfies it.
type Resolver interface {
	ExecutableByName(name string) (*model.Executable, error)
}

// Options tunes optional parts of the output.
type Options struct {
	// ExampleConfig adds a YAML parameter snippet to executable sections.
	ExampleConfig bool
	// OnError receives errors for optional parts that were left out of the
	// output, such as an example configuration that failed to encode.
	OnError func(error)
}

// Renderer renders packages, executables and launch files.
type Renderer struct {
	resolver Resolver
	opts     Options
	example  func(*model.Executable) (string, error)
}

// New creates a Renderer. resolver may be nil, in which case unresolved launch
// usages are never looked up again.
func New(resolver Resolver, opts Options) *Renderer {
	return &Renderer{resolver: resolver, opts: opts, example: ExampleConfig}
}

// Package renders a package section: title, description, table of contents
// and then every executable and launch file in declaration order.
func (r *Renderer) Package(pkg *model.Package) *doctree.Node {
	execTOC := doctree.BulletList()
	execSections := doctree.Container()
	for _, exec := range pkg.Executables() {
		execTOC.Append(tocItem(exec.Name, exec.ShortDescr, anchor.Executable(exec.Name)))
		execSections.Append(r.Executable(exec))
	}

	launchTOC := doctree.BulletList()
	launchSections := doctree.Container()
	for _, launch := range pkg.Launches() {
		launchTOC.Append(tocItem(launch.Name, launch.ShortDescr, anchor.Launch(launch.Name)))
		launchSections.Append(r.Launch(launch))
	}

	toc := doctree.BulletList(
		doctree.ListItem(doctree.Paragraph("Executables"), execTOC),
		doctree.ListItem(doctree.Paragraph("Launch files"), launchTOC),
	)

	return doctree.Section(anchor.Package(pkg.Name).String(),
		doctree.Title(fmt.Sprintf("%s [Ros package]", pkg.Name)),
		doctree.Paragraph(pkg.Description),
		doctree.Subtitle(headingTOC),
		toc,
		doctree.Subtitle(headingExecutables),
		execSections,
		doctree.Subtitle(headingLaunches),
		launchSections,
	)
}

// Executable renders an executable section.
func (r *Renderer) Executable(exec *model.Executable) *doctree.Node {
	section := doctree.Section(anchor.Executable(exec.Name).String(),
		doctree.Title(fmt.Sprintf("%s [Executable]", exec.Name)),
		doctree.Paragraph(exec.LongDescr),
	)
	if exec.Location != "" {
		section.Append(doctree.Paragraph("Source: " + exec.Location))
	}

	section.Append(doctree.Subtitle(headingParameters), parameterFields(exec.Parameters()))

	if r.opts.ExampleConfig && len(exec.Parameters()) > 0 {
		snippet, err := r.example(exec)
		if err != nil {
			r.report(err)
		} else {
			section.Append(doctree.Subtitle(headingExample), doctree.LiteralBlock("yaml", snippet))
		}
	}

	interfaces := doctree.FieldList()
	for _, iface := range exec.Interfaces() {
		body := []*doctree.Node{}
		if iface.Description() != "" {
			body = append(body, doctree.Paragraph(iface.Description()))
		}
		body = append(body, InterfaceTable(iface))
		interfaces.Append(doctree.Field(fmt.Sprintf("%s [%s]", iface.Name(), iface.Category()), body...))
	}
	section.Append(doctree.Subtitle(headingInterfaces), interfaces)

	return section
}

// Launch renders a launch file section.
func (r *Renderer) Launch(launch *model.Launch) *doctree.Node {
	section := doctree.Section(anchor.Launch(launch.Name).String(),
		doctree.Title(fmt.Sprintf("%s [Launch file]", launch.Name)),
		doctree.Paragraph(launch.LongDescr),
	)
	if launch.Location != "" {
		section.Append(doctree.Paragraph("Source: " + launch.Location))
	}

	section.Append(doctree.Subtitle(headingArguments), parameterFields(launch.Arguments()))

	used := doctree.BulletList()
	for _, usage := range launch.Usages() {
		used.Append(doctree.ListItem(r.usage(usage)))
	}
	section.Append(doctree.Subtitle(headingExecUsed), used)

	return section
}

// usage renders one executable started by a launch file. A label left
// unresolved at declaration time gets one more lookup, which picks up
// executables declared later in the same pass; if that fails too the label
// is rendered as written.
func (r *Renderer) usage(u model.ExecUsage) *doctree.Node {
	exec := u.Executable
	if exec == nil && r.resolver != nil {
		if found, err := r.resolver.ExecutableByName(u.Label); err == nil {
			exec = found
		}
	}
	if exec == nil {
		return doctree.Paragraph(u.Label)
	}
	text := fmt.Sprintf("%s: %s", exec.Name, exec.ShortDescr)
	return doctree.Paragraph("", doctree.Reference(text, anchor.Executable(exec.Name).String()))
}

func (r *Renderer) report(err error) {
	if r.opts.OnError != nil {
		r.opts.OnError(err)
	}
}

func tocItem(name, short string, a anchor.Anchor) *doctree.Node {
	text := fmt.Sprintf("%s: %s", name, short)
	return doctree.ListItem(doctree.Paragraph("", doctree.Reference(text, a.String())))
}

func parameterFields(params []*model.Parameter) *doctree.Node {
	fields := doctree.FieldList()
	for _, p := range params {
		fields.Append(doctree.Field(p.Name, ParameterTable(p)))
	}
	return fields
}
