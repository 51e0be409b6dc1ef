package memroute

import "route-comparison-service/internal/domain"

// SampleNodes are the demo delivery locations around New York City.
var SampleNodes = []domain.NodeCreate{
	{Name: "Restaurant A", Lat: 40.7128, Lng: -74.0060},
	{Name: "Restaurant B", Lat: 40.7589, Lng: -73.9851},
	{Name: "Restaurant C", Lat: 40.6892, Lng: -74.0445},
	{Name: "Customer 1", Lat: 40.7505, Lng: -73.9934},
	{Name: "Customer 2", Lat: 40.7282, Lng: -74.0776},
	{Name: "Warehouse", Lat: 40.7831, Lng: -73.9712},
	{Name: "Distribution Center", Lat: 40.6782, Lng: -73.9442},
	{Name: "Restaurant D", Lat: 40.7614, Lng: -73.9776},
	{Name: "Customer 3", Lat: 40.7400, Lng: -73.9897},
	{Name: "Customer 4", Lat: 40.6928, Lng: -73.9903},
}
