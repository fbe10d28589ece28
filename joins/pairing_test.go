package joins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshjoin/types"
	"github.com/notargets/meshjoin/utils"
)

func TestSectionJoins(t *testing.T) {
	var (
		keys = []int32{2, 1, 4, 0, 0, 2, 2, 1, 3, 0, 0, 8, 0, 1, 1}
		pl   = []int32{1, 2, 3, 4, 5}
		pld  = []int32{11, 12, 13, 14, 15}
	)
	r, err := ReconcileJoinOrdering(unitIndex(5), keys, ones(5), pl, pld)
	require.NoError(t, err)

	sj, err := r.SectionJoins(pl, pld)
	require.NoError(t, err)
	require.Len(t, sj, 3)
	assert.Equal(t, types.Owner{Process: 0, Partition: 0}, sj[0].Owner)
	assert.Equal(t, []int32{2, 4}, sj[0].PointList)
	assert.Equal(t, []int32{12, 14}, sj[0].PointListDonor)
	assert.Equal(t, types.Owner{Process: 0, Partition: 1}, sj[1].Owner)
	assert.Equal(t, []int32{5}, sj[1].PointList)
	assert.Equal(t, types.Owner{Process: 2, Partition: 1}, sj[2].Owner)
	assert.Equal(t, []int32{3, 1}, sj[2].PointList)
	assert.Equal(t, []int32{13, 11}, sj[2].PointListDonor)

	_, err = r.SectionJoins(pl[:2], pld)
	assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
}

func TestPairJoins(t *testing.T) {
	ref, err := PairJoins([]int{3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0}, ref)

	ref, err = PairJoins([]int{1, 0, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, ref)

	ref, err = PairJoins(nil)
	require.NoError(t, err)
	assert.Empty(t, ref)

	for _, bad := range [][]int{
		{1, 0, 2},
		{0, 1},
		{1, 2, 3, 0},
		{1, 0, 4, 2},
	} {
		_, err = PairJoins(bad)
		assert.ErrorIs(t, err, utils.ErrPreconditionViolated, "%v", bad)
	}
}
