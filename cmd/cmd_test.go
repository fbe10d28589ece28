package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshjoin/InputParameters"
	"github.com/notargets/meshjoin/utils"
)

func TestRunJoin(t *testing.T) {
	var (
		err   error
		input InputParameters.JoinParameters
		buf   bytes.Buffer
	)
	require.NoError(t, input.Parse([]byte(exampleJoinFile)))
	r, err := RunJoin(&JoinModel{Verbose: true}, &input, &buf)
	require.NoError(t, err)
	assert.Equal(t, utils.Index{1, 0, 3, 2}, r.Order)
	assert.Equal(t, []int32{20, 10, 40, 30}, input.PointList)
	out := buf.String()
	assert.Contains(t, out, "n_section = 2")
	assert.Contains(t, out, "owner 0/0: pl = [20 10] pld = [5 15]")
	assert.Contains(t, out, "owner 1/0: pl = [40 30] pld = [25 35]")
	assert.Contains(t, out, "order_pl = [0 1 2 3]")

	// A non unit stride is rejected before the point lists move
	require.NoError(t, input.Parse([]byte("Stride: [1, 1, 2, 1]")))
	buf.Reset()
	_, err = RunJoin(&JoinModel{}, &input, &buf)
	assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
	assert.Equal(t, []int32{20, 10, 40, 30}, input.PointList)
	assert.Empty(t, buf.String())
}

func TestRunFaceGeometry(t *testing.T) {
	var (
		input InputParameters.FaceParameters
		buf   bytes.Buffer
	)
	require.NoError(t, input.Parse([]byte(exampleFaceFile)))
	fg, err := RunFaceGeometry(&input, &buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0}, fg.Centroid)
	assert.Equal(t, []float64{1}, fg.Length)
	assert.Nil(t, fg.CellCenters)
	assert.Equal(t, "face 1: center = [ 0.50000, 0.50000, 0.00000] length =  1.00000",
		strings.TrimSpace(buf.String()))

	// A tetrahedron given as one cell of four triangles
	require.NoError(t, input.Parse([]byte(`
PointList: [1, 4]
X: [0, 4, 0, 0]
Y: [0, 0, 4, 0]
Z: [0, 0, 0, 4]
FaceVtx: [1, 3, 2, 1, 2, 4, 2, 3, 4, 1, 4, 3]
FaceVtxIdx: [0, 3, 6, 9, 12]
CellFace: [1, 2, 3, 4]
CellFaceIdx: [0, 4]
`)))
	buf.Reset()
	fg, err = RunFaceGeometry(&input, &buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, fg.CellCenters)
	assert.Len(t, fg.Length, 2)
	assert.InDelta(t, 4, fg.Length[0], 1.e-12)
	assert.Contains(t, buf.String(), "cell 1: center = [ 1.00000, 1.00000, 1.00000]")

	// Degenerate ring
	require.NoError(t, input.Parse([]byte(`
FaceVtxIdx: [0, 3, 6, 9, 9]
`)))
	_, err = RunFaceGeometry(&input, &buf)
	assert.ErrorIs(t, err, utils.ErrPreconditionViolated)
}
