// Package aggregate merges duplicate tracks by summing their durations
// while preserving first-seen ordering.
package aggregate

import "github.com/TJ-5/GEMA/internal/model"

// Row is one aggregated track: a key and its cumulative duration in seconds.
type Row struct {
	Key          model.TrackKey
	TotalSeconds float64
}

// Aggregator is an insertion-ordered duration accumulator. A plain map
// would lose the export-order invariant, so the totals live in a map and
// the order in a parallel key slice.
type Aggregator struct {
	totals map[model.TrackKey]float64
	order  []model.TrackKey
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{totals: make(map[model.TrackKey]float64)}
}

// Upsert inserts the key with seconds when it is new, recording it at the
// end of the current order, and otherwise adds seconds to the stored total
// without changing the key's position.
func (a *Aggregator) Upsert(key model.TrackKey, seconds float64) {
	if _, ok := a.totals[key]; !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] += seconds
}

// Snapshot returns the aggregated rows in the order the keys were first
// observed.
func (a *Aggregator) Snapshot() []Row {
	rows := make([]Row, 0, len(a.order))
	for _, key := range a.order {
		rows = append(rows, Row{Key: key, TotalSeconds: a.totals[key]})
	}
	return rows
}

// Len returns the number of distinct keys.
func (a *Aggregator) Len() int {
	return len(a.order)
}
