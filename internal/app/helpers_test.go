package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest writes files into a temp dir and returns an app reading it.
func setupAppTest(t *testing.T, files map[string]string, mutate func(*Config)) (*App, *bytes.Buffer, *safeBuffer) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := Config{Paths: []string{dir}, LogLevel: "debug", Strict: true, ExampleConfig: true}
	if mutate != nil {
		mutate(&cfg)
	}
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("ROSDOC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return NewApp(out, logs, appConfig), out, logs
}

const navHCL = `
package "nav" {
  description = "Navigation stack"

  executable "planner" {
    short_descr = "Path planner"
    long_descr  = "Computes global paths"

    parameter "frequency" {
      type    = "float"
      default = "10.0"
    }

    interface "goal" {
      category = "topic in"
      in_type  = "geometry_msgs/PoseStamped"
    }
  }

  launch "nav_launch" {
    short_descr = "Bring up nav"
    exec_used   = ["planner"]

    argument "use_sim" {}
  }
}
`

const toolsRST = `
.. begin_ros_pkg:: tools
   :description: Helpers

.. begin_ros_exec:: recorder
   :short_descr: Records bags

.. end_ros_exec::
.. end_ros_pkg::
`
