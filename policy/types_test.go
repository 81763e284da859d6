package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/policy"
)

func TestNewPoliciesDefaults(t *testing.T) {
	p := policy.NewPolicies()
	require.True(t, p.TryRewind)
	require.Equal(t, policy.DefaultMaxRewinds, p.MaxRewinds)
}

func TestPolicyOptionsApplyInOrder(t *testing.T) {
	p := policy.NewPolicies(
		policy.WithWindEvenIfNotFit(true),
		policy.WithMaxRewinds(7),
		policy.WithCustomThickness(0.2),
	)
	require.True(t, p.WindEvenIfNotFit)
	require.Equal(t, 7, p.MaxRewinds)
	require.Equal(t, 0.2, p.IntersectionInsulationThickness)
	require.Equal(t, 0.2, p.InterlayerInsulationThickness)
}

func TestGlobalSnapshotIsolation(t *testing.T) {
	orig := policy.Global()
	defer policy.SetGlobal(orig)

	policy.SetGlobal(policy.NewPolicies(policy.WithMaxRewinds(9)))
	snap := policy.Global()
	require.Equal(t, 9, snap.MaxRewinds)

	policy.SetGlobal(policy.NewPolicies(policy.WithMaxRewinds(1)))
	require.Equal(t, 9, snap.MaxRewinds, "earlier snapshot must not mutate after SetGlobal")
}
