package fusionplan

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gomlx/fusionplan/types/optypes"
	"github.com/gomlx/fusionplan/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTensorBytes is the size of the tensors created by addOp.
const testTensorBytes = 16

// newTestGraph creates a graph with one graph input "x".
func newTestGraph(name string) (*Graph, *Tensor) {
	g := NewGraph(name)
	x := must.M1(g.NewTensor("x", shapes.Make(dtypes.Uint8, testTensorBytes)))
	return g, x
}

// addOp adds an operator reading the inputs and writing a single new tensor of testTensorBytes bytes.
func addOp(g *Graph, opType optypes.OpType, inputs ...*Tensor) (*Operator, *Tensor) {
	out := must.M1(g.NewTensor("", shapes.Make(dtypes.Uint8, testTensorBytes)))
	op := must.M1(g.AddOp(opType, inputs, []*Tensor{out}))
	return op, out
}

// linearGraph builds x -> A -> B -> C -> D.
func linearGraph() *Graph {
	g, x := newTestGraph("linear")
	_, t0 := addOp(g, optypes.Conv2D, x)
	_, t1 := addOp(g, optypes.Relu, t0)
	_, t2 := addOp(g, optypes.DepthwiseConv2D, t1)
	addOp(g, optypes.Relu6, t2)
	return g
}

// fanOutGraph builds A -> B and A -> C.
func fanOutGraph() *Graph {
	g, x := newTestGraph("fan_out")
	_, a := addOp(g, optypes.Conv2D, x)
	addOp(g, optypes.Relu, a)
	addOp(g, optypes.Logistic, a)
	return g
}

// joinGraph builds P -> M and Q -> M, with P and Q reading the graph input.
func joinGraph() *Graph {
	g, x := newTestGraph("join")
	_, p := addOp(g, optypes.Conv2D, x)
	_, q := addOp(g, optypes.Conv2D, x)
	addOp(g, optypes.Add, p, q)
	return g
}

// randomGraph builds a random DAG with numOps operators. Operators read 1 to 3 earlier tensors (graph
// inputs, weights or outputs of earlier operators) and write 1 or 2 tensors of random sizes.
func randomGraph(seed uint64, numOps int) *Graph {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	g, x := newTestGraph(fmt.Sprintf("random_%d", seed))
	available := []*Tensor{x}
	kinds := []optypes.OpType{optypes.Conv2D, optypes.Add, optypes.Relu, optypes.Concatenation, optypes.Mul}
	for range numOps {
		numInputs := 1 + rng.IntN(3)
		var inputs []*Tensor
		for range numInputs {
			// Bias the choice towards recent tensors, so the graph has long chains.
			idx := len(available) - 1 - rng.IntN(min(len(available), 4))
			if rng.IntN(5) == 0 {
				idx = rng.IntN(len(available))
			}
			inputs = append(inputs, available[idx])
		}
		if rng.IntN(4) == 0 {
			weights := must.M1(g.NewTensor("", shapes.Make(dtypes.Int8, 1+rng.IntN(100))))
			inputs = append(inputs, weights)
		}
		var outputs []*Tensor
		for range 1 + rng.IntN(2) {
			outputs = append(outputs, must.M1(g.NewTensor("", shapes.Make(dtypes.Uint8, 1+rng.IntN(64), 2))))
		}
		must.M1(g.AddOp(kinds[rng.IntN(len(kinds))], inputs, outputs))
		available = append(available, outputs...)
	}
	return g
}

func operatorIDs(ops []*Operator) []int {
	ids := make([]int, len(ops))
	for i, op := range ops {
		ids[i] = op.ID()
	}
	return ids
}

func TestGraph_AddOp(t *testing.T) {
	g, x := newTestGraph(t.Name())
	w := must.M1(g.NewTensor("w", shapes.Make(dtypes.Int8, 3, 3, 8)))
	a, ta := addOp(g, optypes.Conv2D, x, w)
	b, tb := addOp(g, optypes.Relu, ta)
	c, _ := addOp(g, optypes.Add, ta, tb, ta)

	assert.Equal(t, "0_Conv2D", a.String())
	assert.Equal(t, "2_Add", c.String())
	assert.Same(t, w, g.TensorByName("w"))
	assert.Nil(t, g.TensorByName("missing"))
	assert.Equal(t, 3, g.NumOperators())
	assert.Same(t, b, g.Operator(1))
	assert.Nil(t, g.Operator(3))

	// Producers and consumers.
	assert.Nil(t, x.Producer())
	assert.False(t, x.IsIO())
	assert.False(t, w.IsIO())
	assert.Same(t, a, ta.Producer())
	assert.True(t, ta.IsIO())
	assert.Equal(t, []int{1, 2}, operatorIDs(ta.Consumers()), "c reads ta twice, but it is listed once")

	// Predecessors in input order, successors in ID order, no repetitions.
	assert.Empty(t, a.Predecessors())
	assert.Equal(t, []int{1, 2}, operatorIDs(a.Successors()))
	assert.Equal(t, []int{0, 1}, operatorIDs(c.Predecessors()))
	assert.True(t, a.IsSuccessor(c))
	assert.False(t, c.IsSuccessor(a))

	// Nothing is grouped yet.
	for _, op := range g.Operators() {
		assert.Nil(t, op.Group())
		assert.Nil(t, op.OwnedGroup())
		assert.Nil(t, op.GroupOwner())
	}
}

func TestGraph_Errors(t *testing.T) {
	g, x := newTestGraph(t.Name())
	_, y := addOp(g, optypes.Relu, x)

	t.Run("NewTensor", func(t *testing.T) {
		_, err := g.NewTensor("x", shapes.Make(dtypes.Float32, 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already used")
		_, err = g.NewTensor("dynamic", shapes.Make(dtypes.Float32, -1, 3))
		require.Error(t, err)
		_, err = g.NewTensor("invalid", shapes.Invalid())
		require.Error(t, err)
	})

	fresh := func() *Tensor { return must.M1(g.NewTensor("", shapes.Make(dtypes.Uint8, 1))) }
	_, otherX := newTestGraph("other")
	tests := []struct {
		name     string
		opType   optypes.OpType
		inputs   []*Tensor
		outputs  []*Tensor
		contains string
	}{
		{"invalid type", optypes.Invalid, []*Tensor{x}, []*Tensor{fresh()}, "invalid operator type"},
		{"last type", optypes.Last, []*Tensor{x}, []*Tensor{fresh()}, "invalid operator type"},
		{"nil input", optypes.Add, []*Tensor{nil}, []*Tensor{fresh()}, "input #0"},
		{"foreign input", optypes.Add, []*Tensor{otherX}, []*Tensor{fresh()}, "input #0"},
		{"foreign output", optypes.Add, []*Tensor{x}, []*Tensor{otherX}, "output #0"},
		{"produced twice", optypes.Add, []*Tensor{x}, []*Tensor{y}, "already produced"},
		{"consumed before produced", optypes.Add, []*Tensor{y}, []*Tensor{x}, "topological order"},
		{"repeated output", optypes.Add, []*Tensor{y}, func() []*Tensor { o := fresh(); return []*Tensor{o, o} }(), "more than once"},
		{"self loop", optypes.Add, func() []*Tensor { return []*Tensor{fresh()} }(), nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.outputs == nil {
				// Self loop: same tensor as input and output.
				tt.outputs = tt.inputs
				tt.contains = "both input and output"
			}
			numOps := g.NumOperators()
			_, err := g.AddOp(tt.opType, tt.inputs, tt.outputs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, numOps, g.NumOperators(), "graph must be unchanged after an error")
		})
	}
	assert.Len(t, x.Consumers(), 1, "failed AddOp calls must not leave links behind")
}

func TestGraph_Clone(t *testing.T) {
	g := randomGraph(7, 30)
	require.NoError(t, PlanFusion(g, GreedyChain))
	g2 := g.Clone()
	require.NotSame(t, g, g2)
	assert.Equal(t, g.Plan(), g2.Plan())
	require.Equal(t, g.NumOperators(), g2.NumOperators())
	require.Equal(t, len(g.Tensors()), len(g2.Tensors()))
	for i, op := range g.Operators() {
		op2 := g2.Operator(i)
		assert.NotSame(t, op, op2)
		assert.Equal(t, op.Type(), op2.Type())
		assert.Equal(t, operatorIDs(op.Predecessors()), operatorIDs(op2.Predecessors()))
		assert.Equal(t, operatorIDs(op.Successors()), operatorIDs(op2.Successors()))
	}
	assert.Equal(t, MeasureTraffic(g), MeasureTraffic(g2))

	// Changing the clone doesn't change the original.
	g2.ResetGroups()
	assert.NotEmpty(t, g.Groups())
}
