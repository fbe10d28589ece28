package geometry

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshjoin/utils"
)

const cellOp = "cell centers"

/*
ComputeCellCenters returns the vertex average of every cell of a face based
(NGon/NFace) unstructured zone, 3 values per cell.

cellFace lists the 1 based faces of each cell; a negative face id only carries
orientation and is used by its absolute value. faceVtx lists the 1 based vertices
of each face. Vertices shared by several faces of a cell count once.
*/
func ComputeCellCenters[T utils.Integer](cellFace, faceVtx Compressed[T], x, y, z []float64) (centers []float64,
	err error) {
	var (
		nCell  = cellFace.Len()
		nFace  = faceVtx.Len()
		nVtx   int
		counts []int
	)
	if nVtx, err = checkCoordinates(cellOp, x, y, z); err != nil {
		return
	}
	if nCell == 0 {
		return []float64{}, nil
	}
	for c := 0; c < nCell; c++ {
		if err = cellFace.checkEntity(cellOp, "cell", c, 1, nFace, true); err != nil {
			return
		}
	}
	for f := 0; f < nFace; f++ {
		if err = faceVtx.checkEntity(cellOp, "face", f, 1, nVtx, false); err != nil {
			return
		}
	}

	// Cell to vertex incidence is the product of the cell to face and face to vertex incidences
	CToV := sparse.NewCSR(nCell, nVtx, nil, nil, nil)
	CToV.Mul(incidence(cellFace, nFace), incidence(faceVtx, nVtx))

	sums := make([]r3.Vec, nCell)
	counts = make([]int, nCell)
	CToV.DoNonZero(func(i, j int, v float64) {
		sums[i] = r3.Add(sums[i], vertex(x, y, z, j))
		counts[i]++
	})

	centers = make([]float64, 3*nCell)
	for c := 0; c < nCell; c++ {
		if counts[c] == 0 {
			return nil, utils.NewPreconditionError(cellOp, "cell %d has no vertices", c+1)
		}
		ctr := r3.Scale(1./float64(counts[c]), sums[c])
		centers[3*c], centers[3*c+1], centers[3*c+2] = ctr.X, ctr.Y, ctr.Z
	}
	return
}

// incidence builds the 0/1 entity to id matrix of a validated compressed table.
func incidence[T utils.Integer](c Compressed[T], nIds int) *sparse.CSR {
	SpToId := sparse.NewDOK(c.Len(), nIds)
	for i := 0; i < c.Len(); i++ {
		for _, id := range c.Ring(i) {
			if id < 0 {
				id = -id
			}
			j, _ := utils.ToZeroBased(id, nIds)
			SpToId.Set(i, j, 1)
		}
	}
	return SpToId.ToCSR()
}
