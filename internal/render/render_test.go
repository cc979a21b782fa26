package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/rosdocgo/internal/declare"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/model"
	"github.com/specialistvlad/rosdocgo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// navFixture declares the nav package used across the tests.
func navFixture(t *testing.T) (*registry.Registry, *model.Package) {
	t.Helper()
	reg := registry.New()
	c := declare.New(reg)

	pkg, err := c.BeginPackage("nav", "Navigation stack", nil)
	require.NoError(t, err)

	planner := model.NewExecutable("planner", "src/planner.cpp", "Path planner", "Computes global paths")
	require.NoError(t, c.BeginExecutable(planner))
	_, err = c.AddParameter(&model.Parameter{Name: "frequency", Type: "float", Default: "10.0", Description: "Loop rate"})
	require.NoError(t, err)
	_, err = c.AddInterface(model.InterfaceSpec{
		Name:     "goal",
		Category: "topic in",
		In:       model.Endpoint{Type: "geometry_msgs/PoseStamped", Description: "Target pose"},
	})
	require.NoError(t, err)
	c.EndExecutable()

	_, err = c.BeginLaunch("nav_launch", "", "Bring up nav", "Starts the planner", []string{"planner"}, nil)
	require.NoError(t, err)
	_, err = c.AddArgument(&model.Parameter{Name: "use_sim"})
	require.NoError(t, err)
	c.EndLaunch()
	c.EndPackage()

	return reg, pkg
}

func subtitles(n *doctree.Node) []string {
	var out []string
	for _, s := range n.FindAll(doctree.KindSubtitle) {
		out = append(out, s.Text)
	}
	return out
}

func TestRenderPackage_Nav(t *testing.T) {
	reg, pkg := navFixture(t)
	r := New(reg, Options{})

	tree := r.Package(pkg)

	assert.Equal(t, doctree.KindSection, tree.Kind)
	assert.Equal(t, "pkg_nav", tree.ID)
	assert.Equal(t, "nav [Ros package]", tree.Find(doctree.KindTitle).Text)

	ids := []string{}
	for _, s := range tree.FindAll(doctree.KindSection) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"pkg_nav", "exec_planner", "launch_nav_launch"}, ids)

	refs := map[string]string{}
	for _, ref := range tree.FindAll(doctree.KindReference) {
		refs[ref.Text] = ref.RefID
	}
	assert.Equal(t, "exec_planner", refs["planner: Path planner"])
	assert.Equal(t, "launch_nav_launch", refs["nav_launch: Bring up nav"])

	assert.Empty(t, doctree.DanglingRefs(tree))
}

func TestRenderLaunch_UsageList(t *testing.T) {
	_, pkg := navFixture(t)
	launch, ok := pkg.Launch("nav_launch")
	require.True(t, ok)

	section := New(nil, Options{}).Launch(launch)

	subs := subtitles(section)
	require.NotEmpty(t, subs)
	assert.Equal(t, "Executable used in launch file", subs[len(subs)-1])

	used := section.Children[len(section.Children)-1]
	require.Equal(t, doctree.KindBulletList, used.Kind)
	require.Len(t, used.Children, 1)
	assert.Equal(t, "planner: Path planner", used.Children[0].PlainText())

	ref := used.Find(doctree.KindReference)
	require.NotNil(t, ref)
	assert.Equal(t, "exec_planner", ref.RefID)
}

func TestRenderExecutable_Layout(t *testing.T) {
	reg, pkg := navFixture(t)
	planner, ok := pkg.Executable("planner")
	require.True(t, ok)

	section := New(reg, Options{ExampleConfig: true}).Executable(planner)

	assert.Equal(t, "planner [Executable]", section.Find(doctree.KindTitle).Text)
	assert.Equal(t,
		[]string{"Parameters description", "Example configuration", "Interfaces description"},
		subtitles(section),
	)

	names := []string{}
	for _, f := range section.FindAll(doctree.KindFieldName) {
		names = append(names, f.Text)
	}
	assert.Equal(t, []string{"frequency", "goal [topic in]"}, names)

	literal := section.Find(doctree.KindLiteralBlock)
	require.NotNil(t, literal)
	assert.Equal(t, "yaml", literal.Language)
	assert.Contains(t, literal.Text, "frequency: 10.0")
}

func TestRenderExecutable_NoExampleWithoutParameters(t *testing.T) {
	exec := model.NewExecutable("bare", "", "", "")
	section := New(nil, Options{ExampleConfig: true}).Executable(exec)

	assert.Nil(t, section.Find(doctree.KindLiteralBlock))
	assert.NotContains(t, subtitles(section), "Example configuration")
}

func TestParameterTable_Placeholders(t *testing.T) {
	table := ParameterTable(&model.Parameter{Name: "use_sim"})

	assert.Equal(t, 3, table.Columns)
	require.Len(t, table.Children, 2)
	assert.Equal(t, "TypeDefaultDescription", table.Children[0].PlainText())
	for _, entry := range table.Children[1].Children {
		assert.Equal(t, model.Placeholder, entry.PlainText())
	}
}

func TestInterfaceTable_Action(t *testing.T) {
	iface, err := model.NewInterface(model.InterfaceSpec{
		Name:     "navigate",
		Category: "Action",
		In:       model.Endpoint{Type: "Goal"},
		Out:      model.Endpoint{Type: "Result"},
	})
	require.NoError(t, err)

	table := InterfaceTable(iface)

	require.Len(t, table.Children, 4)
	labels := []string{}
	for _, row := range table.Children[1:] {
		labels = append(labels, row.Children[0].PlainText())
	}
	assert.Equal(t, []string{"Request", "Result", "Status"}, labels)
	assert.Equal(t, "Status"+model.Placeholder+model.Placeholder, table.Children[3].PlainText())
}

func TestRenderLaunch_UnresolvedLabel(t *testing.T) {
	reg := registry.New()
	c := declare.New(reg)
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	launch, err := c.BeginLaunch("nav_launch", "", "", "", []string{"ghost"}, nil)
	require.NoError(t, err)

	section := New(reg, Options{}).Launch(launch)

	list := section.Find(doctree.KindBulletList)
	require.NotNil(t, list)
	require.Len(t, list.Children, 1)
	assert.Equal(t, "ghost", list.Children[0].PlainText())
	assert.Nil(t, list.Find(doctree.KindReference))
}

func TestRenderLaunch_LateResolution(t *testing.T) {
	reg := registry.New()
	c := declare.New(reg)
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	launch, err := c.BeginLaunch("nav_launch", "", "", "", []string{"controller"}, nil)
	require.NoError(t, err)
	require.False(t, launch.Usages()[0].Resolved())

	require.NoError(t, c.BeginExecutable(model.NewExecutable("controller", "", "Follows paths", "")))
	c.EndPackage()

	section := New(reg, Options{}).Launch(launch)

	ref := section.Find(doctree.KindReference)
	require.NotNil(t, ref)
	assert.Equal(t, "controller: Follows paths", ref.Text)
	assert.Equal(t, "exec_controller", ref.RefID)
}

func TestRender_Idempotent(t *testing.T) {
	reg, pkg := navFixture(t)
	r := New(reg, Options{ExampleConfig: true})

	first := r.Package(pkg)
	second := r.Package(pkg)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second render differs (-first +second):\n%s", diff)
	}
}

func TestRender_IdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := registry.New()
		c := declare.New(reg)
		pkg, err := c.BeginPackage("p", rapid.String().Draw(t, "descr"), nil)
		if err != nil {
			t.Fatal(err)
		}

		execCount := rapid.IntRange(0, 4).Draw(t, "execs")
		for i := 0; i < execCount; i++ {
			name := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "exec")
			exec := model.NewExecutable(name, "", rapid.String().Draw(t, "short"), "")
			if err := c.BeginExecutable(exec); err != nil {
				continue
			}
			params := rapid.IntRange(0, 3).Draw(t, "params")
			for j := 0; j < params; j++ {
				_, _ = c.AddParameter(&model.Parameter{
					Name:    rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "param"),
					Default: rapid.String().Draw(t, "default"),
				})
			}
		}
		c.EndPackage()

		r := New(reg, Options{ExampleConfig: true})
		if diff := cmp.Diff(r.Package(pkg), r.Package(pkg)); diff != "" {
			t.Fatalf("render not idempotent:\n%s", diff)
		}
	})
}

func TestExampleConfig(t *testing.T) {
	exec := model.NewExecutable("planner", "", "", "")
	exec.AddParameter(&model.Parameter{Name: "frequency", Default: "10.0"})
	exec.AddParameter(&model.Parameter{Name: "frame"})

	out, err := ExampleConfig(exec)
	require.NoError(t, err)

	expected := "planner:\n  ros__parameters:\n    frequency: 10.0\n    frame: null\n"
	assert.Equal(t, expected, out)
}

func TestRenderExecutable_ExampleConfigError(t *testing.T) {
	_, pkg := navFixture(t)
	planner, ok := pkg.Executable("planner")
	require.True(t, ok)

	var reported []error
	r := New(nil, Options{
		ExampleConfig: true,
		OnError:       func(err error) { reported = append(reported, err) },
	})
	r.example = func(*model.Executable) (string, error) {
		return "", errors.New("encoder broke")
	}

	section := r.Executable(planner)

	assert.Nil(t, section.Find(doctree.KindLiteralBlock))
	assert.NotContains(t, subtitles(section), "Example configuration")
	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "encoder broke")
}
