// Package optypes defines OpType, the kind tag of an operator in the dataflow graph.
//
// The kinds follow the TensorFlow Lite builtin operators, since that is where the graphs
// analyzed by the fusion planner usually come from.
package optypes

import (
	"strings"

	"github.com/gomlx/fusionplan/internal/utils"
	"github.com/pkg/errors"
)

// OpType is an enum of the operator kinds the graph loader recognizes.
type OpType int

//go:generate go tool enumer -type=OpType -output=gen_optype_enumer.go optypes.go

const (
	Invalid OpType = iota

	// Custom is any operator the loader doesn't know about. It is still a node of the graph
	// and takes part in fusion like any other operator.
	Custom

	Add
	ArgMax
	AveragePool2D
	BatchMatMul
	Cast
	Concatenation
	Conv2D
	DepthToSpace
	DepthwiseConv2D
	Dequantize
	Div
	Elu
	Exp
	FullyConnected
	Gather
	HardSwish
	L2Normalization
	LeakyRelu
	Logistic
	MaxPool2D
	Maximum
	Mean
	Minimum
	Mul
	Pack
	Pad
	Prelu
	Quantize
	Relu
	Relu6
	Reshape
	ResizeBilinear
	ResizeNearestNeighbor
	Rsqrt
	Softmax
	SpaceToDepth
	Split
	Sqrt
	Squeeze
	StridedSlice
	Sub
	Tanh
	Transpose
	TransposeConv
	Unpack

	// Last should always be kept the last, it is used as a counter/marker.
	Last
)

var (
	// tfliteMappings maps OpType to the corresponding TFLite builtin operator name, when
	// utils.UpperSnakeCase doesn't work.
	tfliteMappings = map[OpType]string{
		AveragePool2D:   "AVERAGE_POOL_2D",
		BatchMatMul:     "BATCH_MATMUL",
		Conv2D:          "CONV_2D",
		DepthwiseConv2D: "DEPTHWISE_CONV_2D",
		MaxPool2D:       "MAX_POOL_2D",
	}

	// fromTFLite is the reverse of OpType.ToTFLite.
	fromTFLite = func() map[string]OpType {
		m := make(map[string]OpType, int(Last))
		for op := Custom; op < Last; op++ {
			m[op.ToTFLite()] = op
		}
		return m
	}()
)

// ToTFLite returns the TFLite builtin operator name of the operation, e.g. "CONV_2D".
func (op OpType) ToTFLite() string {
	name, ok := tfliteMappings[op]
	if !ok {
		name = utils.UpperSnakeCase(op.String())
	}
	return name
}

// Parse an operator kind either by its Go name ("DepthwiseConv2D", case-insensitive) or by its
// TFLite builtin name ("DEPTHWISE_CONV_2D").
//
// Invalid and Last are never returned.
func Parse(name string) (OpType, error) {
	if op, err := OpTypeString(name); err == nil && op != Invalid && op != Last {
		return op, nil
	}
	if op, found := fromTFLite[strings.ToUpper(name)]; found {
		return op, nil
	}
	return Invalid, errors.Errorf("unknown operator kind %q", name)
}
