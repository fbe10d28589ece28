// Package joins reconciles the pairing of interface entities shared by two
// mesh partitions into a canonical, deterministic ordering.
package joins

import (
	"github.com/notargets/meshjoin/types"
	"github.com/notargets/meshjoin/utils"
)

const reconcileOp = "reconcile join ordering"

type settings struct {
	observer Observer
}

type Option func(*settings)

// WithObserver attaches a diagnostic trace sink to the reconciliation.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observer = o
		}
	}
}

// Reconciliation is everything derived while reordering one join.
type Reconciliation[T utils.Integer] struct {
	Keys         []types.NeighborKey // Neighbor keys in sorted order
	Order        utils.Index         // Sort permutation applied to the point lists
	Sections     []Section
	PointListMin []T
	PointListMax []T
	PairOrder    utils.Index // Canonical pair order, not applied to the point lists
}

// SectionOffsets returns the prefix summed section boundaries.
func (r *Reconciliation[T]) SectionOffsets() utils.Index {
	return SectionOffsets(r.Sections)
}

/*
ReconcileJoinOrdering sorts the entries of one join by their neighbor key and
reorders pointList and pointListDonor in place to match.

Host buffer layout, N = len(pointList):
  - neighborIndex: N+1 offsets into the key list, each entry must own exactly one key
  - neighborKey:   3N values, (process, partition, entity) per key
  - stride:        N values, each must be 1
  - pointListDonor: N values

Any violated precondition returns an error wrapping utils.ErrPreconditionViolated
and leaves every buffer untouched. After a successful call the point lists are in
sorted order, so calling again on the same buffers does not reproduce the first result.
*/
func ReconcileJoinOrdering[T utils.Integer](neighborIndex, neighborKey, stride, pointList, pointListDonor []T,
	opts ...Option) (r *Reconciliation[T], err error) {
	var (
		s = settings{observer: NopObserver{}}
		n = len(pointList)
	)
	for _, opt := range opts {
		opt(&s)
	}
	if err = checkJoinBuffers(n, neighborIndex, neighborKey, stride, pointListDonor); err != nil {
		return
	}
	var keys []types.NeighborKey
	if keys, err = types.NeighborKeysFromFlat(neighborKey); err != nil {
		err = utils.NewPreconditionError(reconcileOp, "%v", err)
		return
	}

	r = &Reconciliation[T]{}
	r.Order = SortNeighborKeys(keys)
	r.Keys = utils.Permute(keys, r.Order)
	r.Sections = ComputeSections(keys, r.Order)

	if err = utils.PermuteInPlace(r.Order, pointList, pointListDonor); err != nil {
		return nil, err
	}
	if r.PointListMin, r.PointListMax, r.PairOrder, err = CanonicalPairOrder(pointList, pointListDonor); err != nil {
		return nil, err
	}

	s.observer.SectionsComputed(r.Sections)
	for i := 0; i < n; i++ {
		s.observer.EntryReconciled(TraceEntry{
			Position:       i,
			PointList:      int64(pointList[i]),
			PointListDonor: int64(pointListDonor[i]),
			Order:          r.Order[i],
			PairOrder:      r.PairOrder[i],
			Key:            r.Keys[i],
		})
	}
	return
}

func checkJoinBuffers[T utils.Integer](n int, neighborIndex, neighborKey, stride, pointListDonor []T) (err error) {
	if err = utils.CheckLength(reconcileOp, "neighbor_index", len(neighborIndex), n+1); err != nil {
		return
	}
	if err = utils.CheckLength(reconcileOp, "neighbor_key", len(neighborKey), types.NeighborKeyWidth*n); err != nil {
		return
	}
	if err = utils.CheckLength(reconcileOp, "stride", len(stride), n); err != nil {
		return
	}
	if err = utils.CheckLength(reconcileOp, "point_list_donor", len(pointListDonor), n); err != nil {
		return
	}
	if neighborIndex[0] != 0 {
		return utils.NewPreconditionError(reconcileOp, "neighbor_index[0] = %d, expected 0", int64(neighborIndex[0]))
	}
	for i := 0; i < n; i++ {
		if nk := neighborIndex[i+1] - neighborIndex[i]; nk != 1 {
			return utils.NewPreconditionError(reconcileOp,
				"entry %d maps to %d neighbor keys, only one to one matches are supported", i, int64(nk))
		}
		if stride[i] != 1 {
			return utils.NewPreconditionError(reconcileOp, "stride[%d] = %d, expected 1", i, int64(stride[i]))
		}
	}
	return
}
