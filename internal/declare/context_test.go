package declare

import (
	"testing"

	"github.com/specialistvlad/rosdocgo/internal/model"
	"github.com/specialistvlad/rosdocgo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() *Context {
	return New(registry.New())
}

func TestContext_NestedDeclarationsAttachToParent(t *testing.T) {
	c := newContext()

	_, err := c.BeginPackage("nav", "Navigation stack", nil)
	require.NoError(t, err)

	planner := model.NewExecutable("planner", "", "Path planner", "Computes paths")
	require.NoError(t, c.BeginExecutable(planner))

	_, err = c.AddParameter(&model.Parameter{Name: "frequency", Type: "float", Default: "10.0", Description: "Loop rate"})
	require.NoError(t, err)
	_, err = c.AddInterface(model.InterfaceSpec{Name: "goal", Category: "topic in", In: model.Endpoint{Type: "PoseStamped"}})
	require.NoError(t, err)
	c.EndExecutable()

	launch, err := c.BeginLaunch("nav_launch", "", "Bring up nav", "Starts planner", []string{"planner"}, nil)
	require.NoError(t, err)
	_, err = c.AddArgument(&model.Parameter{Name: "use_sim"})
	require.NoError(t, err)
	c.EndLaunch()
	c.EndPackage()

	assert.False(t, c.Open())
	require.Len(t, planner.Parameters(), 1)
	require.Len(t, planner.Interfaces(), 1)
	require.Len(t, launch.Arguments(), 1)
	require.Len(t, launch.Usages(), 1)
	assert.Same(t, planner, launch.Usages()[0].Executable)
}

func TestContext_NoActiveParent(t *testing.T) {
	cases := []struct {
		name string
		run  func(c *Context) error
		want error
	}{
		{
			name: "executable without package",
			run:  func(c *Context) error { return c.BeginExecutable(model.NewExecutable("x", "", "", "")) },
			want: model.ErrNoActivePackage,
		},
		{
			name: "launch without package",
			run: func(c *Context) error {
				_, err := c.BeginLaunch("x", "", "", "", nil, nil)
				return err
			},
			want: model.ErrNoActivePackage,
		},
		{
			name: "parameter without executable",
			run: func(c *Context) error {
				_, err := c.AddParameter(&model.Parameter{Name: "p"})
				return err
			},
			want: model.ErrNoActiveExecutable,
		},
		{
			name: "interface without executable",
			run: func(c *Context) error {
				_, err := c.AddInterface(model.InterfaceSpec{Name: "i", Category: "topic in"})
				return err
			},
			want: model.ErrNoActiveExecutable,
		},
		{
			name: "argument without launch",
			run: func(c *Context) error {
				_, err := c.AddArgument(&model.Parameter{Name: "a"})
				return err
			},
			want: model.ErrNoActiveLaunch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(newContext()), tc.want)
		})
	}
}

func TestContext_ParameterInsideLaunchIsRejected(t *testing.T) {
	c := newContext()
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	_, err = c.BeginLaunch("bringup", "", "", "", nil, nil)
	require.NoError(t, err)

	_, err = c.AddParameter(&model.Parameter{Name: "p"})
	require.ErrorIs(t, err, model.ErrNoActiveExecutable)

	_, err = c.AddInterface(model.InterfaceSpec{Name: "i", Category: "action"})
	require.ErrorIs(t, err, model.ErrNoActiveExecutable)
}

func TestContext_UnsupportedCategoryDoesNotMutate(t *testing.T) {
	c := newContext()
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	exec := model.NewExecutable("planner", "", "", "")
	require.NoError(t, c.BeginExecutable(exec))

	_, err = c.AddInterface(model.InterfaceSpec{Name: "bad", Category: "bogus"})
	require.ErrorIs(t, err, model.ErrUnsupportedInterfaceCategory)
	assert.Empty(t, exec.Interfaces())
}

func TestContext_DuplicateExecutableClearsCurrent(t *testing.T) {
	c := newContext()
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)

	first := model.NewExecutable("planner", "", "First", "")
	require.NoError(t, c.BeginExecutable(first))
	c.EndExecutable()

	err = c.BeginExecutable(model.NewExecutable("planner", "", "Second", ""))
	require.ErrorIs(t, err, model.ErrDuplicateEntity)

	_, err = c.AddParameter(&model.Parameter{Name: "leaked"})
	require.ErrorIs(t, err, model.ErrNoActiveExecutable, "children of a rejected executable must not attach anywhere")
	assert.Empty(t, first.Parameters())

	got, err := c.Registry().ExecutableByName("planner")
	require.NoError(t, err)
	assert.Equal(t, "First", got.ShortDescr)
}

func TestContext_ForwardReferenceStaysLabel(t *testing.T) {
	c := newContext()
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)

	launch, err := c.BeginLaunch("bringup", "", "", "", []string{"planner", "rviz2"}, nil)
	require.NoError(t, err)
	c.EndLaunch()
	require.NoError(t, c.BeginExecutable(model.NewExecutable("planner", "", "", "")))

	usages := launch.Usages()
	require.Len(t, usages, 2)
	assert.False(t, usages[0].Resolved(), "resolution happens once, at declaration time")
	assert.Equal(t, "planner", usages[0].Label)
	assert.Equal(t, "rviz2", usages[1].Label)
}

func TestContext_EndIsIdempotent(t *testing.T) {
	c := newContext()
	c.EndPackage()
	c.EndExecutable()
	c.EndLaunch()
	assert.False(t, c.Open())

	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	assert.True(t, c.Open())
	c.EndPackage()
	c.EndPackage()
	assert.False(t, c.Open())
}

func TestContext_MissingEndLeaksIntoNextDeclaration(t *testing.T) {
	c := newContext()
	_, err := c.BeginPackage("nav", "", nil)
	require.NoError(t, err)
	exec := model.NewExecutable("planner", "", "", "")
	require.NoError(t, c.BeginExecutable(exec))

	// No EndExecutable: the parameter lands on the still-open executable.
	_, err = c.AddParameter(&model.Parameter{Name: "stray"})
	require.NoError(t, err)
	assert.True(t, c.Open())
	assert.Len(t, exec.Parameters(), 1)
}
