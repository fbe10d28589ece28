package types

import (
	"cmp"
	"fmt"

	"github.com/notargets/meshjoin/utils"
)

// Owner identifies the (process, partition) pair owning the far side of an
// interface entry.
type Owner struct {
	Process, Partition int
}

func (o Owner) String() string {
	return fmt.Sprintf("%d/%d", o.Process, o.Partition)
}

func (o Owner) Compare(p Owner) int {
	if c := cmp.Compare(o.Process, p.Process); c != 0 {
		return c
	}
	return cmp.Compare(o.Partition, p.Partition)
}

/*
NeighborKey is the remote owner of one interface entry: the owning process, the
partition on that process and the entity within that partition.
Keys are totally ordered, lexicographically on (Process, Partition, Entity).
*/
type NeighborKey struct {
	Process   int
	Partition int
	Entity    int
}

const NeighborKeyWidth = 3 // values per key in the flat host buffer

func (nk NeighborKey) Owner() Owner {
	return Owner{Process: nk.Process, Partition: nk.Partition}
}

func (nk NeighborKey) Compare(k NeighborKey) int {
	if c := nk.Owner().Compare(k.Owner()); c != 0 {
		return c
	}
	return cmp.Compare(nk.Entity, k.Entity)
}

func (nk NeighborKey) Less(k NeighborKey) bool { return nk.Compare(k) < 0 }

// SameOwner is true when both keys belong to the same (process, partition).
func (nk NeighborKey) SameOwner(k NeighborKey) bool {
	return nk.Owner() == k.Owner()
}

func (nk NeighborKey) String() string {
	return fmt.Sprintf("%d/%d/%d", nk.Process, nk.Partition, nk.Entity)
}

// NeighborKeysFromFlat decodes the host layout, where key i occupies
// buf[3*i], buf[3*i+1], buf[3*i+2].
func NeighborKeysFromFlat[T utils.Integer](buf []T) (keys []NeighborKey, err error) {
	if len(buf)%NeighborKeyWidth != 0 {
		err = fmt.Errorf("neighbor key buffer length %d is not a multiple of %d",
			len(buf), NeighborKeyWidth)
		return
	}
	keys = make([]NeighborKey, len(buf)/NeighborKeyWidth)
	for i := range keys {
		keys[i] = NeighborKey{
			Process:   int(buf[NeighborKeyWidth*i]),
			Partition: int(buf[NeighborKeyWidth*i+1]),
			Entity:    int(buf[NeighborKeyWidth*i+2]),
		}
	}
	return
}

/*
CanonicalPair stores the two entity indices of a matched pair in ascending order,
so the pair seen from the local side and from the donor side is the same value.
A pair (40, 25) and a pair (25, 40) are both stored as {25, 40}.
*/
type CanonicalPair struct {
	Min, Max int
}

func NewCanonicalPair(a, b int) CanonicalPair {
	if a <= b {
		return CanonicalPair{Min: a, Max: b}
	}
	return CanonicalPair{Min: b, Max: a}
}

func (cp CanonicalPair) Compare(p CanonicalPair) int {
	if c := cmp.Compare(cp.Min, p.Min); c != 0 {
		return c
	}
	return cmp.Compare(cp.Max, p.Max)
}

func (cp CanonicalPair) String() string {
	return fmt.Sprintf("[%d,%d]", cp.Min, cp.Max)
}
