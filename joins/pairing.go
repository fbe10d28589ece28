package joins

import (
	"github.com/notargets/meshjoin/types"
	"github.com/notargets/meshjoin/utils"
)

// SectionJoin is the part of a reconciled join facing a single owner.
// PointList and PointListDonor are views into the reconciled buffers.
type SectionJoin[T utils.Integer] struct {
	Owner          types.Owner
	PointList      []T
	PointListDonor []T
}

// SectionJoins splits the reconciled point lists into one join per owner.
// pointList and pointListDonor must be the buffers permuted by the reconciliation.
func (r *Reconciliation[T]) SectionJoins(pointList, pointListDonor []T) (sj []SectionJoin[T], err error) {
	const op = "section joins"
	if err = utils.CheckLength(op, "point_list", len(pointList), len(r.Order)); err != nil {
		return
	}
	if err = utils.CheckLength(op, "point_list_donor", len(pointListDonor), len(r.Order)); err != nil {
		return
	}
	sj = make([]SectionJoin[T], len(r.Sections))
	for i, s := range r.Sections {
		sj[i] = SectionJoin[T]{
			Owner:          s.Owner,
			PointList:      pointList[s.Begin:s.End:s.End],
			PointListDonor: pointListDonor[s.Begin:s.End:s.End],
		}
	}
	return
}

/*
PairJoins gives each join and its opposite join the same reference id.
jnToOpp[i] is the opposite of join i; the table must be an involution without
fixed points. Reference ids are assigned in increasing order of the smaller join
of each pair.
*/
func PairJoins(jnToOpp []int) (joinToRef []int, err error) {
	const op = "pair joins"
	n := len(jnToOpp)
	if n%2 != 0 {
		err = utils.NewPreconditionError(op, "odd number of joins %d", n)
		return
	}
	for i, opp := range jnToOpp {
		switch {
		case opp < 0 || opp >= n:
			err = utils.NewPreconditionError(op, "join %d has opposite %d out of range [0,%d)", i, opp, n)
		case opp == i:
			err = utils.NewPreconditionError(op, "join %d is its own opposite", i)
		case jnToOpp[opp] != i:
			err = utils.NewPreconditionError(op, "join %d -> %d -> %d is not symmetric", i, opp, jnToOpp[opp])
		}
		if err != nil {
			return
		}
	}
	joinToRef = make([]int, n)
	var ref int
	for i, opp := range jnToOpp {
		if i < opp {
			joinToRef[i], joinToRef[opp] = ref, ref
			ref++
		}
	}
	return
}
