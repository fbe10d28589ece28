package joins

import (
	"io"
	"log"

	"github.com/notargets/meshjoin/types"
)

// TraceEntry describes one reconciled interface entry, in sorted position.
type TraceEntry struct {
	Position       int
	PointList      int64
	PointListDonor int64
	Order          int // Source position of this entry before the sort
	PairOrder      int // Canonical pair order at this position
	Key            types.NeighborKey
}

// Observer receives the diagnostic trace of a reconciliation. It is called
// after all preconditions hold and the buffers have been permuted.
type Observer interface {
	SectionsComputed(sections []Section)
	EntryReconciled(entry TraceEntry)
}

// NopObserver discards the trace.
type NopObserver struct{}

func (NopObserver) SectionsComputed([]Section) {}
func (NopObserver) EntryReconciled(TraceEntry) {}

// LogObserver writes the trace through a standard logger.
type LogObserver struct {
	Logger *log.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{Logger: log.New(w, "", 0)}
}

func (lo *LogObserver) SectionsComputed(sections []Section) {
	lo.Logger.Printf("n_section = %d", len(sections))
	for i, offset := range SectionOffsets(sections)[1:] {
		lo.Logger.Printf("section_idx[%d] = %d owner = %s", i+1, offset, sections[i].Owner)
	}
}

func (lo *LogObserver) EntryReconciled(e TraceEntry) {
	lo.Logger.Printf("Info :: pl = %d | pld = %d | order = %d | order_pl = %d | %s",
		e.PointList, e.PointListDonor, e.Order, e.PairOrder, e.Key)
}
