package fusionplan

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Group is a fusion group: an ordered chain of operators meant to execute as one unit, with the
// intermediary tensors kept in on-chip storage.
//
// Groups live in an arena owned by the Graph, see Graph.Groups. The first operator is the canonical
// member, the "owner" of the group.
type Group struct {
	id  int
	ops []*Operator
}

// ID of the group, its index in Graph.Groups.
func (grp *Group) ID() int { return grp.id }

// Operators of the group in execution order.
//
// The returned slice is owned by the graph and should not be changed.
func (grp *Group) Operators() []*Operator { return grp.ops }

// Len returns the number of operators in the group.
func (grp *Group) Len() int { return len(grp.ops) }

// Owner returns the canonical (first) member of the group.
func (grp *Group) Owner() *Operator { return grp.ops[0] }

// IDs returns the IDs of the operators of the group, in order.
func (grp *Group) IDs() []int {
	ids := make([]int, len(grp.ops))
	for i, op := range grp.ops {
		ids[i] = op.id
	}
	return ids
}

// neighbors returns the operators right before and right after op within the group,
// the fused predecessor and fused successor. Either can be nil.
//
// The first occurrence of op is used.
func (grp *Group) neighbors(op *Operator) (prev, next *Operator) {
	for i, member := range grp.ops {
		if member != op {
			continue
		}
		if i > 0 {
			prev = grp.ops[i-1]
		}
		if i < len(grp.ops)-1 {
			next = grp.ops[i+1]
		}
		return
	}
	return
}

// String implements fmt.Stringer. E.g.: "#2[4 5 6]".
func (grp *Group) String() string {
	parts := make([]string, len(grp.ops))
	for i, op := range grp.ops {
		parts[i] = fmt.Sprint(op.id)
	}
	return fmt.Sprintf("#%d[%s]", grp.id, strings.Join(parts, " "))
}

// Plan is a fusion plan given as operator IDs: one list per group, in execution order.
//
// It can be exported with Graph.Plan and installed with Graph.ApplyPlan.
type Plan [][]int

// Groups returns the fusion groups of the graph, indexed by their ID.
func (g *Graph) Groups() []*Group { return g.groups }

// Plan exports the current fusion groups of the graph.
func (g *Graph) Plan() Plan {
	plan := make(Plan, len(g.groups))
	for i, group := range g.groups {
		plan[i] = group.IDs()
	}
	return plan
}

// ResetGroups removes all fusion groups: all operators become ungrouped.
func (g *Graph) ResetGroups() {
	g.groups = nil
	for _, op := range g.ops {
		op.groupID = noGroup
	}
}

// ApplyPlan replaces the fusion groups of the graph with the given plan.
//
// It only fails, leaving the graph unchanged, for malformed plans: empty groups or unknown operator IDs.
// Structurally invalid plans (an operator in two groups, groups that are not chains of successors or that
// break dependencies) are accepted as given: use CheckValidity to find their defects.
// When an operator is listed in more than one group, it is considered a member of the first one.
func (g *Graph) ApplyPlan(plan Plan) error {
	for groupIdx, ids := range plan {
		if len(ids) == 0 {
			return errors.Errorf("Graph.ApplyPlan(%q): group #%d is empty", g.name, groupIdx)
		}
		for _, id := range ids {
			if g.Operator(id) == nil {
				return errors.Errorf("Graph.ApplyPlan(%q): group #%d has unknown operator id %d (graph has %d operators)",
					g.name, groupIdx, id, len(g.ops))
			}
		}
	}
	g.ResetGroups()
	for _, ids := range plan {
		g.addGroup(ids)
	}
	return nil
}

// addGroup appends a group to the arena. Operators that already belong to a group keep their first group.
// The ids must be valid.
func (g *Graph) addGroup(ids []int) *Group {
	group := &Group{
		id:  len(g.groups),
		ops: make([]*Operator, len(ids)),
	}
	for i, id := range ids {
		op := g.ops[id]
		group.ops[i] = op
		if op.groupID == noGroup {
			op.groupID = group.id
		}
	}
	g.groups = append(g.groups, group)
	return group
}
