package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/rosdocgo/internal/app"
	"github.com/specialistvlad/rosdocgo/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read from the working directory when --config is not
// given and the file exists.
const DefaultConfigFile = "rosdoc.yaml"

// EnvPrefix prefixes the environment variables overriding configuration keys,
// e.g. ROSDOC_FORMAT.
const EnvPrefix = "ROSDOC"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	codeFailure = 1
	codeUsage   = 2
)

// flagKeys maps configuration keys to the flags that set them.
var flagKeys = map[string]string{
	"packages":       "package",
	"format":         "format",
	"output":         "output",
	"log_level":      "log-level",
	"log_format":     "log-format",
	"strict":         "strict",
	"example_config": "example-config",
	"addr":           "addr",
}

// Execute runs the command line described by args. Documents go to outW,
// logs and usage to errW. Every returned error is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	root.SetOut(errW)
	root.SetErr(errW)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: codeUsage, Message: err.Error()}
}

// NewRootCommand returns the rosdoc command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "rosdoc",
		Short: "Generate documentation for ROS packages",
		Long: `rosdoc reads package, executable and launch file declarations from
.hcl and .rst files and renders cross-linked reference documentation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default: ./"+DefaultConfigFile+" if present)")
	root.PersistentFlags().StringSliceP("package", "p", nil, "package to render (repeatable; default: show requests, then all)")
	root.PersistentFlags().String("log-level", "info", "logging level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "log output format: text or json")
	root.PersistentFlags().Bool("strict", true, "fail when any declaration is rejected")
	root.PersistentFlags().Bool("example-config", true, "add a YAML parameter example to executables")

	render := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render documentation to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if err := app.NewApp(outW, errW, cfg).Run(cmd.Context()); err != nil {
				return &ExitError{Code: codeFailure, Message: err.Error()}
			}
			return nil
		},
	}
	render.Flags().StringP("format", "f", export.FormatMarkdown, "output format: "+strings.Join(export.Formats(), ", "))
	render.Flags().StringP("output", "o", "", "output file (default: stdout)")

	serve := &cobra.Command{
		Use:   "serve [paths...]",
		Short: "Serve rendered documentation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if err := app.NewApp(outW, errW, cfg).Serve(cmd.Context()); err != nil {
				return &ExitError{Code: codeFailure, Message: err.Error()}
			}
			return nil
		},
	}
	serve.Flags().String("addr", app.DefaultAddr, "listen address")

	root.AddCommand(render, serve)
	return root
}

// loadConfig resolves the app configuration for cmd. Precedence, highest
// first: flags set on the command line, ROSDOC_* environment variables, the
// config file, flag defaults. Positional args replace the "paths" key.
func loadConfig(cmd *cobra.Command, args []string) (*app.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, &ExitError{Code: codeUsage, Message: err.Error()}
			}
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ExitError{Code: codeUsage, Message: fmt.Sprintf("reading config file %s: %v", cfgFile, err)}
		}
	}

	paths := args
	if len(paths) == 0 {
		paths = v.GetStringSlice("paths")
	}

	cfg, err := app.NewConfig(app.Config{
		Paths:         paths,
		Packages:      v.GetStringSlice("packages"),
		Format:        strings.ToLower(v.GetString("format")),
		Output:        v.GetString("output"),
		LogFormat:     strings.ToLower(v.GetString("log_format")),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		Strict:        v.GetBool("strict"),
		ExampleConfig: v.GetBool("example_config"),
		Addr:          v.GetString("addr"),
	})
	if err != nil {
		return nil, &ExitError{Code: codeUsage, Message: err.Error()}
	}
	return cfg, nil
}
