package fusionplan

import (
	"github.com/pkg/errors"
)

// ErrNotApplicable is returned when the traffic ratio is undefined because the graph has no I/O tensors.
var ErrNotApplicable = errors.New("traffic ratio not applicable: no I/O tensors")

// Traffic holds the external memory traffic of a graph under its current fusion plan.
type Traffic struct {
	// FusedBytes is the number of bytes that still cross external memory with the fusion plan.
	FusedBytes uint64

	// TotalBytes is the number of bytes that would cross external memory without any fusion.
	TotalBytes uint64
}

// Ratio returns FusedBytes / TotalBytes, a value in [0, 1].
// It returns ErrNotApplicable if TotalBytes is 0.
func (t Traffic) Ratio() (float64, error) {
	if t.TotalBytes == 0 {
		return 0, ErrNotApplicable
	}
	return float64(t.FusedBytes) / float64(t.TotalBytes), nil
}

// Saved returns the number of bytes that the fusion plan keeps in on-chip storage.
func (t Traffic) Saved() uint64 {
	return t.TotalBytes - t.FusedBytes
}

// EstimateTraffic returns the fraction of the input/output tensor bytes that must still cross external
// memory under the graph's fusion plan, relative to running every operator on its own.
//
// It returns an error wrapping ErrNotApplicable for graphs without I/O tensors; check with errors.Is.
// See MeasureTraffic for the accounting rules.
func EstimateTraffic(g *Graph) (float64, error) {
	ratio, err := MeasureTraffic(g).Ratio()
	if err != nil {
		return 0, errors.WithMessagef(err, "EstimateTraffic(%q)", g.name)
	}
	return ratio, nil
}

// MeasureTraffic accounts the bytes crossing external memory under the graph's fusion plan.
//
// Every operator is taken with its group, or as a singleton if ungrouped. Within a group, its fused
// predecessor and fused successor are the members right before and after it.
//
//   - Inputs with a producer count into the total. They also count into the fused bytes, unless produced
//     by the fused predecessor. Graph inputs and constants are not counted at all.
//   - Outputs that are I/O tensors count into the total. They also count into the fused bytes if they
//     don't have exactly one consumer (fan-out and graph outputs must be written), or if the one
//     consumer is not the fused successor.
func MeasureTraffic(g *Graph) Traffic {
	var t Traffic
	for _, op := range g.ops {
		var fusedPred, fusedSucc *Operator
		if group := op.Group(); group != nil && group.Len() > 1 {
			fusedPred, fusedSucc = group.neighbors(op)
		}
		for _, input := range op.inputs {
			if input.producer == nil {
				continue
			}
			size := uint64(input.Memory())
			t.TotalBytes += size
			if input.producer != fusedPred {
				t.FusedBytes += size
			}
		}
		for _, output := range op.outputs {
			if !output.IsIO() {
				continue
			}
			size := uint64(output.Memory())
			t.TotalBytes += size
			if len(output.consumers) != 1 || output.consumers[0] != fusedSucc {
				t.FusedBytes += size
			}
		}
	}
	return t
}
