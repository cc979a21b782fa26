package hcl

import "github.com/hashicorp/hcl/v2"

// Block and attribute names understood by the loader.
const (
	blockPackage    = "package"
	blockShow       = "show"
	blockExecutable = "executable"
	blockLaunch     = "launch"
	blockParameter  = "parameter"
	blockArgument   = "argument"
	blockInterface  = "interface"
)

var nameLabel = []string{"name"}

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockPackage, LabelNames: nameLabel},
		{Type: blockShow, LabelNames: nameLabel},
	},
}

var packageSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockExecutable, LabelNames: nameLabel},
		{Type: blockLaunch, LabelNames: nameLabel},
	},
}

var executableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "location"},
		{Name: "short_descr"},
		{Name: "long_descr"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockParameter, LabelNames: nameLabel},
		{Type: blockInterface, LabelNames: nameLabel},
	},
}

var launchSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "location"},
		{Name: "short_descr"},
		{Name: "long_descr"},
		{Name: "exec_used"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockArgument, LabelNames: nameLabel},
	},
}

var parameterSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "default"},
		{Name: "description"},
	},
}

var interfaceSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "category"},
		{Name: "in_type"},
		{Name: "in_description"},
		{Name: "out_type"},
		{Name: "out_description"},
		{Name: "status_type"},
		{Name: "status_description"},
	},
}

var emptySchema = &hcl.BodySchema{}
