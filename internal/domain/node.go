package domain

import "time"

// Represents a named geographic delivery point.
// Nodes are never mutated after creation; the directory replaces them wholesale.
type Node struct {
	ID        string
	Name      string
	Lat       float64
	Lng       float64
	CreatedAt *time.Time
}

func (n Node) Coordinates() Coordinates {
	return Coordinates{Lat: n.Lat, Lng: n.Lng}
}

// Input for creating a node. Coordinates are already parsed and validated.
type NodeCreate struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lng  float64 `validate:"gte=-180,lte=180"`
}
