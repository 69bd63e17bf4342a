package trajectory_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/trajectory"
)

// TestPolicyMap renders glyphs, obstacles and all annotation kinds.
func TestPolicyMap(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 0, 0},
		{1, 1, 0},
	})
	require.NoError(t, err)

	var tr trajectory.Trajectory
	tr.Append(turnSegment(), trajectory.TagCoverage)
	tr.Append(forwardSegment(), trajectory.TagRecovery)

	got := trajectory.PolicyMap(g, tr.Steps(), tr.Annotations())
	want := [][]string{
		{"R@STA", "#@A*", "@END"},
		{trajectory.ObstacleMark, trajectory.ObstacleMark, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PolicyMap mismatch (-want +got):\n%s", diff)
	}
}
