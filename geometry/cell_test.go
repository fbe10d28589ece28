package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshjoin/utils"
)

// boxZone builds nx unit hexahedra along x as a face based zone.
func boxZone(nx int) (cellFace, faceVtx Compressed[int32], x, y, z []float64) {
	v := func(i, j, k int) int32 { return int32(1 + i + (nx+1)*(j+2*k)) }
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i <= nx; i++ {
				x = append(x, float64(i))
				y = append(y, float64(j))
				z = append(z, float64(k))
			}
		}
	}
	faceVtx.Offsets = []int32{0}
	addFace := func(verts ...int32) int32 {
		faceVtx.Values = append(faceVtx.Values, verts...)
		faceVtx.Offsets = append(faceVtx.Offsets, int32(len(faceVtx.Values)))
		return int32(len(faceVtx.Offsets) - 1)
	}
	for i := 0; i <= nx; i++ {
		addFace(v(i, 0, 0), v(i, 1, 0), v(i, 1, 1), v(i, 0, 1))
	}
	cellFace.Offsets = []int32{0}
	for c := 0; c < nx; c++ {
		cellFace.Values = append(cellFace.Values,
			int32(c+1), -int32(c+2), // Shared x faces, the second one reversed
			addFace(v(c, 0, 0), v(c+1, 0, 0), v(c+1, 0, 1), v(c, 0, 1)),
			addFace(v(c, 1, 0), v(c+1, 1, 0), v(c+1, 1, 1), v(c, 1, 1)),
			addFace(v(c, 0, 0), v(c+1, 0, 0), v(c+1, 1, 0), v(c, 1, 0)),
			addFace(v(c, 0, 1), v(c+1, 0, 1), v(c+1, 1, 1), v(c, 1, 1)),
		)
		cellFace.Offsets = append(cellFace.Offsets, int32(len(cellFace.Values)))
	}
	return
}

func TestComputeCellCenters(t *testing.T) {
	{ // Single unit cube
		cellFace, faceVtx, x, y, z := boxZone(1)
		assert.Equal(t, 6, faceVtx.Len())
		centers, err := ComputeCellCenters(cellFace, faceVtx, x, y, z)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.5, 0.5}, centers)
	}
	{ // Row of cubes sharing faces
		cellFace, faceVtx, x, y, z := boxZone(3)
		centers, err := ComputeCellCenters(cellFace, faceVtx, x, y, z)
		require.NoError(t, err)
		assert.Equal(t, []float64{
			0.5, 0.5, 0.5,
			1.5, 0.5, 0.5,
			2.5, 0.5, 0.5,
		}, centers)
	}
	{ // No cells
		centers, err := ComputeCellCenters(Compressed[int]{}, Compressed[int]{}, nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, centers)
	}
}

func TestComputeCellCenters_Preconditions(t *testing.T) {
	cellFace, faceVtx, x, y, z := boxZone(1)
	{
		bad := NewCompressed(cellFace.Offsets, []int32{1, 2, 3, 4, 5, 7})
		_, err := ComputeCellCenters(bad, faceVtx, x, y, z)
		assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
	}
	{
		bad := NewCompressed([]int32{0, 0}, cellFace.Values)
		_, err := ComputeCellCenters(bad, faceVtx, x, y, z)
		assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
	}
	{
		values := append([]int32{}, faceVtx.Values...)
		values[0] = 9
		_, err := ComputeCellCenters(cellFace, NewCompressed(faceVtx.Offsets, values), x, y, z)
		assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
	}
	{
		_, err := ComputeCellCenters(cellFace, faceVtx, x, y, z[:3])
		assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
	}
}
