package geometry

import (
	"github.com/notargets/meshjoin/utils"
)

/*
Compressed is a variable length per entity list, e.g. face to vertex.
The list of entity i is Values[Offsets[i]:Offsets[i+1]]; offsets are zero based
positions into Values while the values themselves are 1 based ids.
*/
type Compressed[T utils.Integer] struct {
	Offsets []T
	Values  []T
}

func NewCompressed[T utils.Integer](offsets, values []T) Compressed[T] {
	return Compressed[T]{Offsets: offsets, Values: values}
}

// Len is the number of entities described.
func (c Compressed[T]) Len() int {
	if len(c.Offsets) == 0 {
		return 0
	}
	return len(c.Offsets) - 1
}

// Ring returns the list of entity i, i zero based.
func (c Compressed[T]) Ring(i int) []T {
	return c.Values[c.Offsets[i]:c.Offsets[i+1]]
}

// checkEntity validates the list of entity i: ordered offsets inside Values,
// at least minSize members, and members that are valid 1 based ids in [1, nIds].
func (c Compressed[T]) checkEntity(op, what string, i, minSize, nIds int, abs bool) (err error) {
	beg, end := int(c.Offsets[i]), int(c.Offsets[i+1])
	switch {
	case beg < 0 || end > len(c.Values) || beg > end:
		return utils.NewPreconditionError(op, "%s %d has offsets [%d,%d) outside [0,%d)",
			what, i+1, beg, end, len(c.Values))
	case end-beg < minSize:
		return utils.NewPreconditionError(op, "%s %d has %d members, need at least %d",
			what, i+1, end-beg, minSize)
	}
	for _, id := range c.Values[beg:end] {
		if abs && id < 0 {
			id = -id
		}
		if _, err = utils.ToZeroBased(id, nIds); err != nil {
			return utils.NewPreconditionError(op, "%s %d: %v", what, i+1, err)
		}
	}
	return
}

func checkCoordinates(op string, x, y, z []float64) (nVtx int, err error) {
	nVtx = len(x)
	if err = utils.CheckLength(op, "vertex_y", len(y), nVtx); err != nil {
		return
	}
	err = utils.CheckLength(op, "vertex_z", len(z), nVtx)
	return
}
