// Package geometry computes geometric reductions over boundary faces and cells
// described by compressed connectivity and flat coordinate buffers.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshjoin/utils"
)

const faceOp = "face centroid and scale"

func vertex(x, y, z []float64, i int) r3.Vec {
	return r3.Vec{X: x[i], Y: y[i], Z: z[i]}
}

/*
ComputeFaceCentroidAndScale returns, for every 1 based face id in pointList, the
vertex average of the face ring and the shortest ring edge, wrap around edge included.

Inputs:
  - x, y, z: vertex coordinates, zero based positions
  - faceVtx, faceVtxIdx: compressed face to vertex table, 1 based vertex ids

Outputs, in pointList order:
  - centroid: 3N values, x y z of face i at 3i, 3i+1, 3i+2
  - length:   N values

The centroid is the unweighted mean of the ring vertices, not the area centroid.
Every referenced face is validated before anything is computed; a ring with fewer
than two vertices is a precondition violation.
*/
func ComputeFaceCentroidAndScale[T utils.Integer](pointList []T, x, y, z []float64,
	faceVtx, faceVtxIdx []T) (centroid, length []float64, err error) {
	var (
		fv    = NewCompressed(faceVtxIdx, faceVtx)
		n     = len(pointList)
		faces = make([]int, n)
		nVtx  int
	)
	if nVtx, err = checkCoordinates(faceOp, x, y, z); err != nil {
		return
	}
	if len(faceVtxIdx) == 0 {
		err = utils.NewPreconditionError(faceOp, "face_vertex_offsets is empty, need n_faces+1 entries")
		return
	}
	for i, faceID := range pointList {
		if faces[i], err = utils.ToZeroBased(faceID, fv.Len()); err != nil {
			err = utils.NewPreconditionError(faceOp, "point_list[%d]: face %v", i, err)
			return
		}
		if err = fv.checkEntity(faceOp, "face", faces[i], 2, nVtx, false); err != nil {
			return
		}
	}

	centroid = make([]float64, 3*n)
	length = make([]float64, n)
	for i, face := range faces {
		c, le := faceCentroidAndScale(fv.Ring(face), x, y, z)
		centroid[3*i], centroid[3*i+1], centroid[3*i+2] = c.X, c.Y, c.Z
		length[i] = le
	}
	return
}

func faceCentroidAndScale[T utils.Integer](ring []T, x, y, z []float64) (c r3.Vec, minLen float64) {
	var (
		nv    = len(ring)
		verts = make([]r3.Vec, nv)
	)
	for k, id := range ring {
		pos, _ := utils.ToZeroBased(id, len(x))
		verts[k] = vertex(x, y, z, pos)
	}
	minLen = math.MaxFloat64
	for k, p1 := range verts {
		p2 := verts[(k+1)%nv]
		c = r3.Add(c, p1)
		minLen = math.Min(minLen, r3.Norm(r3.Sub(p1, p2)))
	}
	c = r3.Scale(1./float64(nv), c)
	return
}
