package fusionplan

import (
	"fmt"

	"github.com/gomlx/fusionplan/types/shapes"
)

// Tensor represents a value flowing between operators: an activation written by one operator (its producer)
// and read by zero or more operators (its consumers).
//
// Tensors without a producer are graph inputs, weights or constants. They never take part in the traffic
// accounting, see Tensor.IsIO.
type Tensor struct {
	graph *Graph
	id    int
	name  string // Optional.
	shape shapes.Shape

	producer  *Operator
	consumers []*Operator
}

// ID of the tensor, its position in Graph.Tensors.
func (t *Tensor) ID() int { return t.id }

// Name returns the optional name given at creation.
func (t *Tensor) Name() string { return t.name }

// Shape returns the shape of the tensor.
func (t *Tensor) Shape() shapes.Shape {
	return t.shape
}

// Memory returns the size of the tensor in bytes.
func (t *Tensor) Memory() uintptr {
	return t.shape.Memory()
}

// Producer returns the operator that writes the tensor, or nil for graph inputs and constants.
func (t *Tensor) Producer() *Operator { return t.producer }

// Consumers returns the operators that read the tensor, in operator order.
// It is empty for graph outputs.
//
// The returned slice is owned by the graph and should not be changed.
func (t *Tensor) Consumers() []*Operator { return t.consumers }

// IsIO returns whether the tensor is an I/O tensor for traffic accounting: that is, whether it is
// written by some operator of the graph.
func (t *Tensor) IsIO() bool { return t.producer != nil }

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("t%d", t.id)
}

// addConsumer appends op to the consumers, once.
func (t *Tensor) addConsumer(op *Operator) {
	if n := len(t.consumers); n > 0 && t.consumers[n-1] == op {
		// Operators are added in order, so a repeated consumer is always the last one.
		return
	}
	t.consumers = append(t.consumers, op)
}
