package joins

import (
	"slices"

	"github.com/notargets/meshjoin/types"
	"github.com/notargets/meshjoin/utils"
)

// Section is a maximal run [Begin, End) of sorted entries sharing one owner.
type Section struct {
	Owner      types.Owner
	Begin, End int
}

func (s Section) Len() int { return s.End - s.Begin }

// SortNeighborKeys returns the permutation order such that keys[order[i]] is
// non-decreasing. Equal keys keep their input order.
func SortNeighborKeys(keys []types.NeighborKey) (order utils.Index) {
	order = utils.NewIdentity(len(keys))
	slices.SortStableFunc(order, func(i, j int) int {
		return keys[i].Compare(keys[j])
	})
	return
}

// ComputeSections groups the sorted sequence keys[order[...]] into sections.
// A section starts exactly where the (process, partition) owner changes.
func ComputeSections(keys []types.NeighborKey, order utils.Index) (sections []Section) {
	for i, src := range order {
		if i == 0 || !keys[src].SameOwner(keys[order[i-1]]) {
			sections = append(sections, Section{
				Owner: keys[src].Owner(),
				Begin: i,
			})
		}
		sections[len(sections)-1].End = i + 1
	}
	return
}

// SectionOffsets returns the prefix sum of section lengths: len(sections)+1
// entries, starting at 0 and ending at the number of entries.
func SectionOffsets(sections []Section) (offsets utils.Index) {
	offsets = utils.NewIndex(len(sections) + 1)
	for i, s := range sections {
		offsets[i+1] = offsets[i] + s.Len()
	}
	return
}

// CanonicalPairOrder computes the per entry canonical pairs and the
// permutation sorting them by (min, max). The input arrays are not reordered.
func CanonicalPairOrder[T utils.Integer](pointList, pointListDonor []T) (plMin, plMax []T,
	order utils.Index, err error) {
	if err = utils.CheckLength("canonical pair order", "point_list_donor",
		len(pointListDonor), len(pointList)); err != nil {
		return
	}
	var (
		n     = len(pointList)
		pairs = make([]types.CanonicalPair, n)
	)
	plMin, plMax = make([]T, n), make([]T, n)
	for i := range pointList {
		plMin[i], plMax[i] = min(pointList[i], pointListDonor[i]), max(pointList[i], pointListDonor[i])
		pairs[i] = types.NewCanonicalPair(int(pointList[i]), int(pointListDonor[i]))
	}
	order = utils.NewIdentity(n)
	slices.SortStableFunc(order, func(i, j int) int {
		return pairs[i].Compare(pairs[j])
	})
	return
}
