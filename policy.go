package fusionplan

// Policy selects the greedy heuristic PlanFusion uses to grow fusion groups.
//
// Exactly one policy is used per run. Both walk the graph in operator ID order and grow each group
// along the first successor of its last operator; they only differ on what happens at fan-out points.
type Policy int

const (
	// GreedyChain keeps growing the chain through operators with more than one successor, following
	// the first successor only. Sibling branches are picked up later, usually as singleton groups.
	GreedyChain Policy = iota

	// BranchStopping ends the chain right after an operator with more than one successor: chains
	// never continue past a fan-out point.
	BranchStopping
)
