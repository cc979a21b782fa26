package render

import (
	"bytes"
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/model"
	"gopkg.in/yaml.v3"
)

// ExampleConfig returns a ROS 2 parameter file snippet for exec, with each
// parameter set to its documented default:
//
//	planner:
//	  ros__parameters:
//	    frequency: 10.0
//
// Parameters keep their declaration order. A parameter without a default is
// written as null.
func ExampleConfig(exec *model.Executable) (string, error) {
	params := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range exec.Parameters() {
		value := &yaml.Node{Kind: yaml.ScalarNode, Value: p.Default}
		if p.Default == "" {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		params.Content = append(params.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
			value,
		)
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: exec.Name},
			{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: "ros__parameters"},
					params,
				},
			},
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding example configuration for %q: %w", exec.Name, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding example configuration for %q: %w", exec.Name, err)
	}
	return buf.String(), nil
}
