package fusionplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMembership(t *testing.T) {
	g := linearGraph()
	require.NoError(t, g.ApplyPlan(Plan{{0, 1}, {1, 2, 3}}))
	defects := CheckMembership(g)
	require.Len(t, defects, 1)
	d := defects[0]
	assert.Equal(t, DefectMembership, d.Kind)
	assert.Same(t, g.Operator(1), d.Op)
	assert.Equal(t, []int{0, 1}, d.Groups)
	assert.Equal(t, "membership: 1_Relu double fused #0[0 1] #1[1 2 3]", d.String())
	assert.EqualError(t, d, d.String())

	// Operator 1 is counted as a member of its first group.
	assert.Same(t, g.Groups()[0], g.Operator(1).Group())
	assert.Same(t, g.Operator(1), g.Groups()[1].Owner())
	assert.Nil(t, g.Operator(1).OwnedGroup())
	assert.Same(t, g.Operator(0), g.Operator(1).GroupOwner())
}

func TestCheckAdjacency(t *testing.T) {
	g := linearGraph()
	require.NoError(t, g.ApplyPlan(Plan{{0, 2}, {1}, {3}}))
	defects := CheckAdjacency(g)
	require.Len(t, defects, 1)
	assert.Equal(t, DefectAdjacency, defects[0].Kind)
	assert.Same(t, g.Operator(2), defects[0].Op)
	assert.Same(t, g.Operator(0), defects[0].Related)
	assert.Contains(t, defects[0].String(), "2_DepthwiseConv2D not 0_Conv2D's successor")
}

func TestCheckReadiness(t *testing.T) {
	t.Run("missing predecessor", func(t *testing.T) {
		// P and M fused, but M also needs Q, which only executes later.
		g := joinGraph()
		require.NoError(t, g.ApplyPlan(Plan{{0, 2}, {1}}))
		assert.Empty(t, CheckAdjacency(g))
		defects := CheckReadiness(g)
		require.Len(t, defects, 1)
		assert.Equal(t, DefectReadiness, defects[0].Kind)
		assert.Same(t, g.Operator(2), defects[0].Op)
		assert.Same(t, g.Operator(1), defects[0].Related)
		assert.Equal(t, []int{0}, defects[0].Groups)
	})

	t.Run("reversed group", func(t *testing.T) {
		g := linearGraph()
		require.NoError(t, g.ApplyPlan(Plan{{1, 0}}))
		defects := CheckValidity(g)
		kinds := make([]DefectKind, len(defects))
		for i, d := range defects {
			kinds[i] = d.Kind
		}
		// 0 is not a successor of 1, and 1 would run before its predecessor 0.
		assert.Equal(t, []DefectKind{DefectAdjacency, DefectReadiness}, kinds)
	})

	t.Run("ungrouped", func(t *testing.T) {
		g := randomGraph(3, 25)
		require.NoError(t, g.ApplyPlan(nil))
		assert.Empty(t, CheckValidity(g))
	})
}

func TestApplyPlan_Errors(t *testing.T) {
	g := linearGraph()
	require.NoError(t, g.ApplyPlan(Plan{{0, 1, 2, 3}}))
	for _, plan := range []Plan{{{0}, {}}, {{0, 4}}, {{-1}}} {
		err := g.ApplyPlan(plan)
		require.Errorf(t, err, "plan %v", plan)
		assert.Equal(t, Plan{{0, 1, 2, 3}}, g.Plan(), "groups must be unchanged after an error")
	}
}
