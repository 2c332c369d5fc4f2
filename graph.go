package fusionplan

import (
	"slices"

	"github.com/gomlx/fusionplan/types/optypes"
	"github.com/gomlx/fusionplan/types/shapes"
	"github.com/pkg/errors"
)

// Graph is the dataflow graph of a model: operators connected through tensors.
// See details in NewGraph.
type Graph struct {
	name string

	// tensors holds all the tensors created in the graph, indexed by their ID.
	tensors []*Tensor

	// tensorsByName indexes the named tensors.
	tensorsByName map[string]*Tensor

	// ops holds the operators in the order they were added, which is a topological order.
	ops []*Operator

	// groups is the arena of fusion groups, indexed by the group ID.
	groups []*Group
}

// NewGraph creates an empty graph.
//
// A graph is built by creating its tensors with Graph.NewTensor and then adding the operators one by one,
// in topological order, with Graph.AddOp: the inputs of an operator must be either graph inputs (tensors
// never produced) or outputs of operators added earlier.
//
// Building it this way guarantees the graph is acyclic and that operator IDs follow a topological order,
// which is what PlanFusion, CheckValidity and EstimateTraffic rely on.
func NewGraph(name string) *Graph {
	return &Graph{
		name:          name,
		tensorsByName: make(map[string]*Tensor),
	}
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// Tensors returns all tensors of the graph, indexed by their ID.
func (g *Graph) Tensors() []*Tensor { return g.tensors }

// Operators returns all operators of the graph, indexed by their ID (a topological order).
func (g *Graph) Operators() []*Operator { return g.ops }

// NumOperators returns the number of operators in the graph.
func (g *Graph) NumOperators() int { return len(g.ops) }

// Operator returns the operator with the given ID, or nil if it is out of range.
func (g *Graph) Operator(id int) *Operator {
	if id < 0 || id >= len(g.ops) {
		return nil
	}
	return g.ops[id]
}

// TensorByName returns the tensor with the given name, or nil if there is none.
func (g *Graph) TensorByName(name string) *Tensor {
	return g.tensorsByName[name]
}

// NewTensor creates a new tensor in the graph. The name is optional, but if given it must be unique.
func (g *Graph) NewTensor(name string, shape shapes.Shape) (*Tensor, error) {
	if err := shape.Check(); err != nil {
		return nil, errors.WithMessagef(err, "Graph.NewTensor(%q)", name)
	}
	if name != "" {
		if _, found := g.tensorsByName[name]; found {
			return nil, errors.Errorf("Graph.NewTensor(%q): tensor name already used", name)
		}
	}
	t := &Tensor{
		graph: g,
		id:    len(g.tensors),
		name:  name,
		shape: shape.Clone(),
	}
	g.tensors = append(g.tensors, t)
	if name != "" {
		g.tensorsByName[name] = t
	}
	return t, nil
}

// AddOp appends a new operator that reads the inputs and writes the outputs.
//
// It returns an error, and leaves the graph unchanged, if:
//
//   - opType is not a valid operator kind;
//   - any of the tensors is nil or belongs to another graph;
//   - an output is already produced by another operator, or is listed twice;
//   - an output was already consumed by an earlier operator (it would make the graph cyclic or
//     the operators out of topological order);
//   - an output is also one of the inputs.
func (g *Graph) AddOp(opType optypes.OpType, inputs, outputs []*Tensor) (*Operator, error) {
	if !opType.IsAOpType() || opType == optypes.Invalid || opType == optypes.Last {
		return nil, errors.Errorf("Graph.AddOp(%s): invalid operator type", opType)
	}
	for i, t := range inputs {
		if t == nil || t.graph != g {
			return nil, errors.Errorf("Graph.AddOp(%s): input #%d is nil or not a tensor of graph %q", opType, i, g.name)
		}
	}
	for i, t := range outputs {
		if t == nil || t.graph != g {
			return nil, errors.Errorf("Graph.AddOp(%s): output #%d is nil or not a tensor of graph %q", opType, i, g.name)
		}
		if t.producer != nil {
			return nil, errors.Errorf("Graph.AddOp(%s): output %s is already produced by operator %s", opType, t, t.producer)
		}
		if len(t.consumers) > 0 {
			return nil, errors.Errorf("Graph.AddOp(%s): output %s is already consumed by operator %s, "+
				"operators must be added in topological order", opType, t, t.consumers[0])
		}
		for _, other := range outputs[:i] {
			if other == t {
				return nil, errors.Errorf("Graph.AddOp(%s): output %s listed more than once", opType, t)
			}
		}
		for _, input := range inputs {
			if input == t {
				return nil, errors.Errorf("Graph.AddOp(%s): tensor %s is both input and output", opType, t)
			}
		}
	}

	op := &Operator{
		graph:   g,
		id:      len(g.ops),
		opType:  opType,
		inputs:  append([]*Tensor(nil), inputs...),
		outputs: append([]*Tensor(nil), outputs...),
		groupID: noGroup,
	}
	for _, t := range op.inputs {
		t.addConsumer(op)
		producer := t.producer
		if producer == nil {
			continue
		}
		if !slices.Contains(op.predecessors, producer) {
			op.predecessors = append(op.predecessors, producer)
			producer.successors = append(producer.successors, op)
		}
	}
	for _, t := range op.outputs {
		t.producer = op
	}
	g.ops = append(g.ops, op)
	return op, nil
}

// Clone returns a deep copy of the graph, including its fusion groups.
func (g *Graph) Clone() *Graph {
	g2 := NewGraph(g.name)
	for _, t := range g.tensors {
		// Shapes and names were validated already.
		t2 := &Tensor{graph: g2, id: t.id, name: t.name, shape: t.shape.Clone()}
		g2.tensors = append(g2.tensors, t2)
		if t.name != "" {
			g2.tensorsByName[t.name] = t2
		}
	}
	mapTensors := func(ts []*Tensor) []*Tensor {
		ts2 := make([]*Tensor, len(ts))
		for i, t := range ts {
			ts2[i] = g2.tensors[t.id]
		}
		return ts2
	}
	for _, op := range g.ops {
		// Can't fail: same operators, same order as g.
		if _, err := g2.AddOp(op.opType, mapTensors(op.inputs), mapTensors(op.outputs)); err != nil {
			panic(errors.WithMessagef(err, "Graph.Clone(%q)", g.name))
		}
	}
	for _, group := range g.groups {
		g2.addGroup(group.IDs())
	}
	return g2
}
