package fusionplan

import (
	"fmt"

	"github.com/gomlx/fusionplan/internal/utils"
)

// DefectKind tells which check found a Defect.
type DefectKind int

const (
	// DefectMembership is an operator that belongs to more than one group.
	DefectMembership DefectKind = iota

	// DefectAdjacency is a pair of consecutive group members where the later one is not a successor of the earlier.
	DefectAdjacency

	// DefectReadiness is a group that would execute before one of its members' predecessors.
	DefectReadiness
)

// Defect is a structural problem found in a fusion plan by CheckValidity.
type Defect struct {
	Kind DefectKind

	// Op is the operator with the defect.
	Op *Operator

	// Related is the other operator involved, if any: the adjacent group member for DefectAdjacency,
	// the missing predecessor for DefectReadiness.
	Related *Operator

	// Groups are the IDs of the groups involved.
	Groups []int

	// Message describes the defect.
	Message string
}

// String implements fmt.Stringer.
func (d Defect) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Error implements error, so a Defect can be returned or wrapped as one.
func (d Defect) Error() string { return d.String() }

// CheckValidity runs CheckMembership, CheckAdjacency and CheckReadiness, and returns all defects found.
// An empty result means the plan is valid.
//
// Ungrouped operators are valid: they are treated as singleton groups.
func CheckValidity(g *Graph) []Defect {
	var defects []Defect
	defects = append(defects, CheckMembership(g)...)
	defects = append(defects, CheckAdjacency(g)...)
	defects = append(defects, CheckReadiness(g)...)
	return defects
}

// CheckMembership reports operators that are members of more than one group: for instance an operator
// that owns a group and is also a non-canonical member of another.
// It also reports operators whose recorded group doesn't list them.
func CheckMembership(g *Graph) []Defect {
	var defects []Defect
	memberships := make([][]int, len(g.ops))
	for _, group := range g.groups {
		for _, op := range group.ops {
			memberships[op.id] = append(memberships[op.id], group.id)
		}
	}
	for _, op := range g.ops {
		groupIDs := memberships[op.id]
		for _, other := range groupIDs[min(1, len(groupIDs)):] {
			defects = append(defects, Defect{
				Kind:    DefectMembership,
				Op:      op,
				Groups:  []int{groupIDs[0], other},
				Message: fmt.Sprintf("%s double fused %s %s", op, g.groups[groupIDs[0]], g.groups[other]),
			})
		}
		if op.groupID != noGroup && len(groupIDs) == 0 {
			defects = append(defects, Defect{
				Kind:    DefectMembership,
				Op:      op,
				Groups:  []int{op.groupID},
				Message: fmt.Sprintf("%s refers to group %s, which doesn't list it", op, g.groups[op.groupID]),
			})
		}
	}
	return defects
}

// CheckAdjacency reports consecutive members of a group where the later one is not a successor
// of the earlier one: groups must be contiguous paths of the graph.
func CheckAdjacency(g *Graph) []Defect {
	var defects []Defect
	for _, group := range g.groups {
		for i := 0; i < len(group.ops)-1; i++ {
			x, y := group.ops[i], group.ops[i+1]
			if !x.IsSuccessor(y) {
				defects = append(defects, Defect{
					Kind:    DefectAdjacency,
					Op:      y,
					Related: x,
					Groups:  []int{group.id},
					Message: fmt.Sprintf("%s not %s's successor in group %s", y, x, group),
				})
			}
		}
	}
	return defects
}

// CheckReadiness simulates the execution of the plan: operators are visited in ID order, and the first
// member visited of a group executes the whole group at once. Ungrouped operators execute alone.
//
// A defect is reported for every predecessor of a member that has not executed yet at that point and
// is not an earlier member of the same group.
func CheckReadiness(g *Graph) []Defect {
	var defects []Defect
	executed := utils.MakeSet[int](len(g.ops))
	for _, op := range g.ops {
		if executed.Has(op.id) {
			continue
		}
		members := []*Operator{op}
		groupIDs := []int(nil)
		group := op.Group()
		if group != nil {
			members = group.ops
			groupIDs = []int{group.id}
		}
		earlier := utils.MakeSet[int](len(members))
		for _, member := range members {
			for _, pred := range member.predecessors {
				if executed.Has(pred.id) || earlier.Has(pred.id) {
					continue
				}
				where := "ungrouped"
				if group != nil {
					where = fmt.Sprintf("in group %s", group)
				}
				defects = append(defects, Defect{
					Kind:    DefectReadiness,
					Op:      member,
					Related: pred,
					Groups:  groupIDs,
					Message: fmt.Sprintf("%s (%s) executes before its predecessor %s", member, where, pred),
				})
			}
			earlier.Insert(member.id)
		}
		for _, member := range members {
			executed.Insert(member.id)
		}
	}
	return defects
}
