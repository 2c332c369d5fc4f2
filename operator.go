package fusionplan

import (
	"fmt"
	"slices"

	"github.com/gomlx/fusionplan/types/optypes"
)

// noGroup is the group ID of operators that are not part of any fusion group.
const noGroup = -1

// Operator is one computation node of the graph, with its inputs and outputs tensors.
//
// Its ID is its position in topological order: every predecessor of an operator has a smaller ID.
type Operator struct {
	graph  *Graph
	id     int
	opType optypes.OpType

	inputs  []*Tensor
	outputs []*Tensor

	// predecessors are the producers of the inputs, in input order, without repetition.
	predecessors []*Operator

	// successors are the consumers of the outputs, in ID order, without repetition.
	successors []*Operator

	// groupID indexes Graph.groups, or is noGroup.
	groupID int
}

// ID of the operator, its position in Graph.Operators.
func (op *Operator) ID() int { return op.id }

// Type returns the kind of the operator.
func (op *Operator) Type() optypes.OpType { return op.opType }

// Inputs returns the tensors read by the operator, in the order given to Graph.AddOp.
func (op *Operator) Inputs() []*Tensor { return op.inputs }

// Outputs returns the tensors written by the operator, in the order given to Graph.AddOp.
func (op *Operator) Outputs() []*Tensor { return op.outputs }

// Predecessors returns the operators that produce any of the inputs of op.
func (op *Operator) Predecessors() []*Operator { return op.predecessors }

// Successors returns the operators that consume any of the outputs of op, sorted by ID.
//
// The first successor is the one the fusion policies follow when growing a chain.
func (op *Operator) Successors() []*Operator { return op.successors }

// IsSuccessor returns whether other consumes some output of op.
func (op *Operator) IsSuccessor(other *Operator) bool {
	return slices.Contains(op.successors, other)
}

// Group returns the fusion group op belongs to, or nil if it is not grouped.
func (op *Operator) Group() *Group {
	if op.groupID == noGroup {
		return nil
	}
	return op.graph.groups[op.groupID]
}

// OwnedGroup returns op's group only if op is its canonical (first) member, otherwise nil.
func (op *Operator) OwnedGroup() *Group {
	group := op.Group()
	if group == nil || group.Owner() != op {
		return nil
	}
	return group
}

// GroupOwner returns the canonical (first) member of op's group, only if op is a non-canonical member.
// It returns nil for ungrouped operators and for the owner itself.
func (op *Operator) GroupOwner() *Operator {
	group := op.Group()
	if group == nil || group.Owner() == op {
		return nil
	}
	return group.Owner()
}

// String implements fmt.Stringer. It returns "<id>_<type>", e.g. "3_Conv2D".
func (op *Operator) String() string {
	return fmt.Sprintf("%d_%s", op.id, op.opType)
}
