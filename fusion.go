package fusionplan

import (
	"github.com/gomlx/fusionplan/internal/utils"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultPolicy is the policy used when none is configured.
const DefaultPolicy = BranchStopping

// PlanFusion partitions the operators of the graph into fusion groups using the given policy,
// replacing any groups the graph had before.
//
// Operators are visited in ID order (a topological order) and every operator not yet in a group
// starts a new candidate group, grown by following the first successor of its last member:
//
//   - An operator with more than one predecessor is only appended if every predecessor is either
//     already in a committed group or in the candidate group itself. Otherwise the chain stops
//     before it.
//   - With BranchStopping, the chain also stops right after appending an operator with more than
//     one successor.
//
// A non-empty candidate is committed as a group (singletons included). An operator whose candidate
// is empty stays ungrouped.
//
// The graph must be acyclic with operators in topological order, which Graph.AddOp guarantees.
func PlanFusion(g *Graph, policy Policy) error {
	if !policy.IsAPolicy() {
		return errors.Errorf("PlanFusion(%q): invalid fusion policy %s", g.name, policy)
	}
	g.ResetGroups()
	finalized := utils.MakeSet[int](len(g.ops))
	var numUngrouped int
	for _, op := range g.ops {
		if finalized.Has(op.id) {
			continue
		}
		chain := growChain(op, policy, finalized)
		if len(chain) == 0 {
			numUngrouped++
			klog.V(2).Infof("PlanFusion(%q): operator %s left ungrouped, predecessors not ready", g.name, op)
			continue
		}
		ids := make([]int, len(chain))
		for i, member := range chain {
			ids[i] = member.id
			finalized.Insert(member.id)
		}
		group := g.addGroup(ids)
		klog.V(1).Infof("PlanFusion(%q): committed group %s", g.name, group)
	}
	klog.V(1).Infof("PlanFusion(%q, %s): %d operators, %d groups, %d ungrouped",
		g.name, policy, len(g.ops), len(g.groups), numUngrouped)
	return nil
}

// growChain returns the candidate group starting at start. It may be empty.
func growChain(start *Operator, policy Policy, finalized utils.Set[int]) []*Operator {
	var chain []*Operator
	inChain := utils.MakeSet[int]()
	cur := start
	for {
		if len(cur.predecessors) > 1 {
			if pending := pendingPredecessors(cur, finalized, inChain); len(pending) > 0 {
				klog.V(2).Infof("chain from %s stops before %s: waiting on %v", start, cur, pending)
				break
			}
		}
		chain = append(chain, cur)
		inChain.Insert(cur.id)
		if len(cur.successors) == 0 || (policy == BranchStopping && len(cur.successors) > 1) {
			break
		}
		cur = cur.successors[0]
	}
	return chain
}

// pendingPredecessors returns the predecessors of op neither finalized nor in the candidate chain.
func pendingPredecessors(op *Operator, finalized, inChain utils.Set[int]) []*Operator {
	var pending []*Operator
	for _, pred := range op.predecessors {
		if !finalized.Has(pred.id) && !inChain.Has(pred.id) {
			pending = append(pending, pred)
		}
	}
	return pending
}
