package services

import "route-comparison-service/internal/domain"

type ComparisonEntry struct {
	Algorithm domain.Algorithm
	Result    *domain.RouteResult
}

// Comparison pairs the latest history entry of each algorithm for one start/end pair.
// Deltas are qaoa minus dijkstra and are set only when both results exist.
type Comparison struct {
	Start              string
	End                string
	Entries            []ComparisonEntry
	DistanceDelta      *float64
	ExecutionTimeDelta *float64
}

// Compare scans history, which is ordered oldest first.
func Compare(history []domain.RouteResult, start, end string) Comparison {
	latest := make(map[domain.Algorithm]domain.RouteResult, len(domain.Algorithms))
	for _, r := range history {
		if r.StartNodeID == start && r.EndNodeID == end {
			latest[r.Algorithm] = r
		}
	}

	cmp := Comparison{Start: start, End: end}
	for _, a := range domain.Algorithms {
		entry := ComparisonEntry{Algorithm: a}
		if r, ok := latest[a]; ok {
			c := r.Clone()
			entry.Result = &c
		}
		cmp.Entries = append(cmp.Entries, entry)
	}

	d, okD := latest[domain.AlgorithmDijkstra]
	q, okQ := latest[domain.AlgorithmQAOA]
	if okD && okQ {
		dist := q.Distance - d.Distance
		exec := q.ExecutionTime - d.ExecutionTime
		cmp.DistanceDelta = &dist
		cmp.ExecutionTimeDelta = &exec
	}

	return cmp
}

// Compare builds the comparison for the current selection.
func (o *Orchestrator) Compare() Comparison {
	sel := o.Selection()
	return Compare(o.results.History(), sel.Start, sel.End)
}
