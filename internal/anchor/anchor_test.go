package anchor

import (
	"testing"

	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchor_String(t *testing.T) {
	testCases := []struct {
		name     string
		anchor   Anchor
		expected string
	}{
		{name: "package", anchor: Package("nav"), expected: "pkg_nav"},
		{name: "executable", anchor: Executable("planner"), expected: "exec_planner"},
		{name: "launch with underscore", anchor: Launch("nav_launch"), expected: "launch_nav_launch"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.anchor.String())
		})
	}
}

func TestAnchor_RoundTrip(t *testing.T) {
	for _, id := range []string{"pkg_nav", "exec_planner", "launch_nav_launch", "exec_a_b_c"} {
		t.Run(id, func(t *testing.T) {
			a, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, a.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{"", "nav", "pkg_", "node_planner", "_planner"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
		})
	}
}

func TestRefs(t *testing.T) {
	cases := []struct {
		node  *doctree.Node
		text  string
		refID string
	}{
		{node: RefPackage("nav"), text: "nav", refID: "pkg_nav"},
		{node: RefExecutable("planner"), text: "planner", refID: "exec_planner"},
		{node: RefLaunch("nav_launch"), text: "nav_launch", refID: "launch_nav_launch"},
		{node: RefExecutable("not_declared"), text: "not_declared", refID: "exec_not_declared"},
	}

	for _, tc := range cases {
		assert.Equal(t, doctree.KindInline, tc.node.Kind)
		ref := tc.node.Find(doctree.KindReference)
		require.NotNil(t, ref)
		assert.Equal(t, tc.text, ref.Text)
		assert.Equal(t, tc.refID, ref.RefID)
	}
}
