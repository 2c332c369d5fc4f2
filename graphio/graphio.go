// Package graphio loads fusionplan graphs from YAML graph descriptions, and reads and writes fusion plans.
//
// It plays the role of the model loader: it is not needed to use fusionplan, which only requires a
// graph built with fusionplan.NewGraph.
//
// A graph description looks like:
//
//	name: mobilenet_block
//	policy: branch_stopping   # Optional.
//	tensors:
//	  - {name: input, dtype: uint8, shape: [1, 112, 112, 32]}
//	  - {name: w0, dtype: int8, shape: [1, 3, 3, 32]}
//	  - {name: t0, dtype: uint8, shape: [1, 112, 112, 32]}
//	operators:
//	  - {kind: DEPTHWISE_CONV_2D, inputs: [input, w0], outputs: [t0]}
//	plan:                     # Optional hand-authored plan, operator IDs.
//	  - [0]
//
// Operators must be listed in topological order, and their IDs are their positions in the list.
// Operator kinds are either the optypes names ("DepthwiseConv2D") or the TFLite builtin names.
package graphio

import (
	"io"
	"os"

	"github.com/gomlx/fusionplan"
	"github.com/gomlx/fusionplan/internal/utils"
	"github.com/gomlx/fusionplan/types/optypes"
	"github.com/gomlx/fusionplan/types/shapes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Description of a graph, as read from YAML.
type Description struct {
	Name      string         `yaml:"name"`
	Policy    string         `yaml:"policy,omitempty"`
	Tensors   []TensorDesc   `yaml:"tensors"`
	Operators []OperatorDesc `yaml:"operators"`
	Plan      [][]int        `yaml:"plan,omitempty"`
}

// TensorDesc describes one tensor.
type TensorDesc struct {
	Name  string `yaml:"name"`
	DType string `yaml:"dtype"`
	Shape []int  `yaml:"shape"`
}

// OperatorDesc describes one operator.
type OperatorDesc struct {
	Kind    string   `yaml:"kind"`
	Inputs  []string `yaml:"inputs"`
	Outputs []string `yaml:"outputs"`

	// Custom marks an operator kind unknown to optypes: it becomes an optypes.Custom operator
	// instead of an error.
	Custom bool `yaml:"custom,omitempty"`
}

// Decode reads a graph description from r. Unknown fields are an error.
func Decode(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	d := &Description{}
	if err := dec.Decode(d); err != nil {
		return nil, errors.Wrap(err, "decoding graph description")
	}
	return d, nil
}

// Load reads a graph description from the file in path.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening graph description")
	}
	defer func() { _ = f.Close() }()
	d, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "file %q", path)
	}
	return d, nil
}

// FusionPolicy returns the policy named in the description, or fusionplan.DefaultPolicy if none is given.
func (d *Description) FusionPolicy() (fusionplan.Policy, error) {
	if d.Policy == "" {
		return fusionplan.DefaultPolicy, nil
	}
	policy, err := fusionplan.PolicyString(d.Policy)
	if err != nil {
		return policy, errors.Wrapf(err, "graph %q", d.Name)
	}
	return policy, nil
}

// Build creates the graph described. If the description has a plan, it is applied to the graph.
func (d *Description) Build() (*fusionplan.Graph, error) {
	g := fusionplan.NewGraph(d.Name)
	for i, td := range d.Tensors {
		if td.Name == "" {
			return nil, errors.Errorf("graph %q: tensor #%d has no name", d.Name, i)
		}
		dtype, err := utils.DTypeFromName(td.DType)
		if err != nil {
			return nil, errors.WithMessagef(err, "graph %q: tensor %q", d.Name, td.Name)
		}
		if _, err := g.NewTensor(td.Name, shapes.Make(dtype, td.Shape...)); err != nil {
			return nil, errors.WithMessagef(err, "graph %q", d.Name)
		}
	}

	lookup := func(opIdx int, names []string) ([]*fusionplan.Tensor, error) {
		tensors := make([]*fusionplan.Tensor, len(names))
		for i, name := range names {
			tensors[i] = g.TensorByName(name)
			if tensors[i] == nil {
				return nil, errors.Errorf("graph %q: operator #%d refers to undeclared tensor %q", d.Name, opIdx, name)
			}
		}
		return tensors, nil
	}
	for opIdx, od := range d.Operators {
		opType, err := optypes.Parse(od.Kind)
		if err != nil {
			if !od.Custom {
				return nil, errors.WithMessagef(err, "graph %q: operator #%d (set \"custom: true\" for custom operators)", d.Name, opIdx)
			}
			opType = optypes.Custom
		}
		inputs, err := lookup(opIdx, od.Inputs)
		if err != nil {
			return nil, err
		}
		outputs, err := lookup(opIdx, od.Outputs)
		if err != nil {
			return nil, err
		}
		if _, err := g.AddOp(opType, inputs, outputs); err != nil {
			return nil, errors.WithMessagef(err, "graph %q: operator #%d", d.Name, opIdx)
		}
	}

	if len(d.Plan) > 0 {
		if err := g.ApplyPlan(d.Plan); err != nil {
			return nil, err
		}
	}
	return g, nil
}
