package rst

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/model"
)

// ErrMissingArgument is returned for a directive that needs a name but has none.
var ErrMissingArgument = errors.New("directive requires a name argument")

var directiveKinds = map[string]config.Kind{
	"begin_ros_pkg":         config.KindBeginPackage,
	"end_ros_pkg":           config.KindEndPackage,
	"begin_ros_exec":        config.KindBeginExecutable,
	"end_ros_exec":          config.KindEndExecutable,
	"begin_ros_launch":      config.KindBeginLaunch,
	"end_ros_launch":        config.KindEndLaunch,
	"declare_ros_parameter": config.KindParameter,
	"declare_ros_arg":       config.KindArgument,
	"declare_ros_interface": config.KindInterface,
	"show_ros_pkg":          config.KindShowPackage,
}

var (
	directiveRe = regexp.MustCompile(`^(\s*)\.\.\s+([A-Za-z0-9_-]+)::\s*(.*?)\s*$`)
	optionRe    = regexp.MustCompile(`^\s*:([A-Za-z0-9_]+):\s*(.*?)\s*$`)
)

// directive is a directive being collected.
type directive struct {
	kind    config.Kind
	name    string
	indent  int
	line    int
	options config.Options
	lastKey string
}

// Parse extracts declarations from r. path is only used for source
// positions. Every malformed directive is reported; the returned
// declarations contain the well-formed ones.
func Parse(r io.Reader, path string) ([]*config.Declaration, error) {
	var (
		decls   []*config.Declaration
		errs    []error
		current *directive
		lineNo  int
	)

	flush := func() {
		if current == nil {
			return
		}
		src := model.NewSource(path, current.line)
		if current.name == "" && needsName(current.kind) {
			errs = append(errs, fmt.Errorf("%s: %s: %w", src, current.kind, ErrMissingArgument))
		} else {
			decls = append(decls, &config.Declaration{
				Kind:    current.kind,
				Name:    current.name,
				Options: current.options,
				Source:  src,
			})
		}
		current = nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if m := directiveRe.FindStringSubmatch(line); m != nil {
			flush()
			kind, ok := directiveKinds[m[2]]
			if !ok {
				continue
			}
			current = &directive{
				kind:    kind,
				name:    m[3],
				indent:  len(m[1]),
				line:    lineNo,
				options: config.Options{},
			}
			continue
		}

		if current == nil {
			continue
		}
		if strings.TrimSpace(line) == "" || indentOf(line) <= current.indent {
			flush()
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil {
			current.options[m[1]] = m[2]
			current.lastKey = m[1]
			continue
		}
		// Continuation of a multi-line option value.
		if current.lastKey != "" {
			prev := current.options[current.lastKey]
			current.options[current.lastKey] = strings.TrimSpace(prev + " " + strings.TrimSpace(line))
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading %s: %w", path, err))
	}
	return decls, errors.Join(errs...)
}

func needsName(kind config.Kind) bool {
	switch kind {
	case config.KindEndPackage, config.KindEndExecutable, config.KindEndLaunch:
		return false
	}
	return true
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
