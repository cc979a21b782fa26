package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translator flattens one file body into declarations.
type translator struct {
	decls []*config.Declaration
	diags hcl.Diagnostics
}

func translateFile(body hcl.Body) ([]*config.Declaration, hcl.Diagnostics) {
	t := &translator{}
	content, diags := body.Content(rootSchema)
	t.diags = append(t.diags, diags...)
	if content == nil {
		return nil, t.diags
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case blockPackage:
			t.pkg(block)
		case blockShow:
			t.leaf(block, config.KindShowPackage, emptySchema)
		}
	}
	return t.decls, t.diags
}

func (t *translator) pkg(block *hcl.Block) {
	content, diags := block.Body.Content(packageSchema)
	t.diags = append(t.diags, diags...)
	if diags.HasErrors() {
		return
	}

	t.emit(config.KindBeginPackage, block, t.options(content.Attributes), block.DefRange)
	for _, child := range content.Blocks {
		switch child.Type {
		case blockExecutable:
			t.container(child, config.KindBeginExecutable, config.KindEndExecutable, executableSchema)
		case blockLaunch:
			t.container(child, config.KindBeginLaunch, config.KindEndLaunch, launchSchema)
		}
	}
	t.emit(config.KindEndPackage, block, nil, endRange(block))
}

// container emits an executable or launch block with its nested leaves.
func (t *translator) container(block *hcl.Block, begin, end config.Kind, schema *hcl.BodySchema) {
	content, diags := block.Body.Content(schema)
	t.diags = append(t.diags, diags...)
	if diags.HasErrors() {
		return
	}

	t.emit(begin, block, t.options(content.Attributes), block.DefRange)
	for _, child := range content.Blocks {
		switch child.Type {
		case blockParameter:
			t.leaf(child, config.KindParameter, parameterSchema)
		case blockArgument:
			t.leaf(child, config.KindArgument, parameterSchema)
		case blockInterface:
			t.leaf(child, config.KindInterface, interfaceSchema)
		}
	}
	t.emit(end, block, nil, endRange(block))
}

func (t *translator) leaf(block *hcl.Block, kind config.Kind, schema *hcl.BodySchema) {
	content, diags := block.Body.Content(schema)
	t.diags = append(t.diags, diags...)
	if diags.HasErrors() {
		return
	}
	t.emit(kind, block, t.options(content.Attributes), block.DefRange)
}

func (t *translator) emit(kind config.Kind, block *hcl.Block, opts config.Options, rng hcl.Range) {
	if opts == nil {
		opts = config.Options{}
	}
	t.decls = append(t.decls, &config.Declaration{
		Kind:    kind,
		Name:    block.Labels[0],
		Options: opts,
		Source:  model.NewSource(rng.Filename, rng.Start.Line),
	})
}

// options evaluates every attribute to a string. Attributes that fail to
// evaluate are reported and left out.
func (t *translator) options(attrs hcl.Attributes) config.Options {
	opts := make(config.Options, len(attrs))
	for name, attr := range attrs {
		var (
			value string
			diags hcl.Diagnostics
		)
		if name == config.OptExecUsed {
			value, diags = stringList(attr)
		} else {
			value, diags = stringValue(attr)
		}
		t.diags = append(t.diags, diags...)
		if !diags.HasErrors() {
			opts[name] = value
		}
	}
	return opts
}

// stringValue evaluates a scalar attribute. Strings, numbers and bools are
// accepted; null yields "".
func stringValue(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("The %q attribute must be a string, number or bool, got %s.", attr.Name, val.Type().FriendlyName()),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	return str.AsString(), nil
}

// stringList evaluates exec_used, which is either a list of strings or a
// single comma separated string. Lists are joined with ", " so that
// config.Options.List splits both forms the same way.
func stringList(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return stringValue(attr)
	}

	var items []string
	if diags := gohcl.DecodeExpression(attr.Expr, nil, &items); diags.HasErrors() {
		return "", diags
	}
	return strings.Join(items, ", "), nil
}

// endRange points end markers at the closing brace of the block.
func endRange(block *hcl.Block) hcl.Range {
	if body, ok := block.Body.(*hclsyntax.Body); ok {
		return body.EndRange
	}
	return block.DefRange
}
