package services

import (
	"errors"
	"fmt"
	"route-comparison-service/internal/domain"
	"sync"
)

var (
	ErrDuplicateNodeID = errors.New("duplicate node id")
	ErrEmptyNodeID     = errors.New("empty node id")
)

// NodeDirectory is the in-memory snapshot of delivery points that selections
// and rendered paths are resolved against.
//
// The snapshot is only ever swapped wholesale by ReplaceAll. Readers always see
// one complete snapshot; lookups are never cached outside it.
type NodeDirectory struct {
	mu    sync.RWMutex
	nodes []domain.Node
	byID  map[string]int
}

func NewNodeDirectory() *NodeDirectory {
	return &NodeDirectory{byID: map[string]int{}}
}

// ListNodes returns the nodes in server order.
func (d *NodeDirectory) ListNodes() []domain.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Node(nil), d.nodes...)
}

func (d *NodeDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.nodes)
}

// ReplaceAll swaps in a new snapshot. A snapshot with an empty or duplicate
// id is rejected and the previous snapshot stays in place.
func (d *NodeDirectory) ReplaceAll(nodes []domain.Node) error {
	byID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("replace nodes: index %d: %w", i, ErrEmptyNodeID)
		}
		if _, ok := byID[n.ID]; ok {
			return fmt.Errorf("replace nodes: %w %q", ErrDuplicateNodeID, n.ID)
		}
		byID[n.ID] = i
	}

	snapshot := append([]domain.Node(nil), nodes...)

	d.mu.Lock()
	d.nodes = snapshot
	d.byID = byID
	d.mu.Unlock()

	return nil
}

func (d *NodeDirectory) Lookup(id string) (domain.Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.byID[id]
	if !ok {
		return domain.Node{}, false
	}
	return d.nodes[i], true
}

// ResolveName returns the node's name, or id itself when the node is unknown.
func (d *NodeDirectory) ResolveName(id string) string {
	if n, ok := d.Lookup(id); ok {
		return n.Name
	}
	return id
}

// ResolveCoordinates returns the node's coordinates, or false when unknown.
func (d *NodeDirectory) ResolveCoordinates(id string) (domain.Coordinates, bool) {
	n, ok := d.Lookup(id)
	if !ok {
		return domain.Coordinates{}, false
	}
	return n.Coordinates(), true
}
