package services

import "route-comparison-service/internal/domain"

// RouteView is a RouteResult resolved against the current directory for display.
type RouteView struct {
	Result    domain.RouteResult
	StartName string
	EndName   string
	PathNames []string
	Geometry  PathGeometry
}

// Describe resolves names and geometry for r using the directory as it is now.
func (o *Orchestrator) Describe(r domain.RouteResult) RouteView {
	names := make([]string, 0, len(r.Path))
	for _, id := range r.Path {
		names = append(names, o.directory.ResolveName(id))
	}
	return RouteView{
		Result:    r,
		StartName: o.directory.ResolveName(r.StartNodeID),
		EndName:   o.directory.ResolveName(r.EndNodeID),
		PathNames: names,
		Geometry:  ResolvePath(o.directory, r.Path),
	}
}

// Snapshot is everything a renderer needs. Current and History come from one
// read of the result store; History can still lag Current while the refresh
// that follows an optimize is in flight. Nodes and Selection are read
// separately.
type Snapshot struct {
	Nodes     []domain.Node
	Selection Selection
	Current   *RouteView
	History   []RouteView
	Pending   int
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	sel, pending := o.selection, o.pending
	o.mu.Unlock()

	snap := Snapshot{
		Nodes:     o.directory.ListNodes(),
		Selection: sel,
		Pending:   pending,
	}

	cur, history := o.results.Read()
	if cur != nil {
		v := o.Describe(*cur)
		snap.Current = &v
	}

	snap.History = make([]RouteView, 0, len(history))
	for _, r := range history {
		snap.History = append(snap.History, o.Describe(r))
	}

	return snap
}
