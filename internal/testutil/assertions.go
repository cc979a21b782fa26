package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSectionRendered checks that the markdown output contains the anchor
// of a section, e.g. AssertSectionRendered(t, result, "exec_planner").
func AssertSectionRendered(t *testing.T, result *HarnessResult, anchor string) {
	t.Helper()

	expected := fmt.Sprintf(`<a id="%s"></a>`, anchor)
	require.True(t,
		strings.Contains(result.Output, expected),
		"expected section %q was not rendered", anchor,
	)
}

// AssertLinked checks that the markdown output links to anchor with text.
func AssertLinked(t *testing.T, result *HarnessResult, text, anchor string) {
	t.Helper()

	expected := fmt.Sprintf("[%s](#%s)", text, anchor)
	require.True(t,
		strings.Contains(result.Output, expected),
		"expected link %s was not found in output", expected,
	)
}
