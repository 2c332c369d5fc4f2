// Package fusionplan decides which consecutive operators of a neural-network dataflow graph should be
// fused, so their intermediary tensors stay in on-chip storage instead of round-tripping through
// external memory, and estimates how much external memory traffic a fusion plan leaves.
//
// Among its features:
//
//   - A Graph model of operators and tensors, built in topological order with NewGraph, Graph.NewTensor
//     and Graph.AddOp.
//   - PlanFusion: two greedy policies (GreedyChain and BranchStopping) that partition operators into
//     ordered fusion groups.
//   - CheckValidity: membership, adjacency and dependency-readiness checks over a plan, generated
//     or hand-authored (see Graph.ApplyPlan).
//   - EstimateTraffic: the fraction of tensor bytes that still cross external memory under a plan.
//
// It doesn't search for an optimal plan, nor does it execute the graph. Loading graphs from files is done
// by the sub-package graphio.
package fusionplan

// Generates the String/parse methods of the enums.
//go:generate go tool enumer -type=Policy -transform=snake -output=gen_policy_enumer.go policy.go
//go:generate go tool enumer -type=DefectKind -trimprefix=Defect -transform=lower -output=gen_defectkind_enumer.go validity.go
