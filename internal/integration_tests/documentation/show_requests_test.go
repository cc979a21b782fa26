package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/rosdocgo/internal/app"
	"github.com/specialistvlad/rosdocgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPackages = `
package "alpha" {
  executable "a" { short_descr = "A" }
}

package "beta" {
  executable "b" { short_descr = "B" }
}

show "beta" {}
`

// Test for: show requests select what is rendered, and explicit packages win.
func TestDocumentation_ShowRequests(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"pkgs.hcl": twoPackages}, nil)

	require.NoError(t, result.Err)
	testutil.AssertSectionRendered(t, result, "pkg_beta")
	assert.NotContains(t, result.Output, `<a id="pkg_alpha">`)
}

func TestDocumentation_ExplicitPackagesOverrideShow(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"pkgs.hcl": twoPackages}, func(c *app.Config) {
		c.Packages = []string{"alpha", "beta"}
	})

	require.NoError(t, result.Err)
	alpha := strings.Index(result.Output, `<a id="pkg_alpha">`)
	beta := strings.Index(result.Output, `<a id="pkg_beta">`)
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, beta)
	assert.Less(t, alpha, beta)
}

// Test for: rendering the same registry twice yields the same bytes.
func TestDocumentation_RenderIsIdempotent(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"pkgs.hcl": twoPackages}, func(c *app.Config) {
		c.Format = "json"
	})
	require.NoError(t, result.Err)

	second := testutil.RunIntegrationTest(t, map[string]string{"pkgs.hcl": twoPackages}, func(c *app.Config) {
		c.Format = "json"
	})
	require.NoError(t, second.Err)

	assert.Equal(t, result.Output, second.Output)
}
