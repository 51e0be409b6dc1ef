package dto

import "time"

type SelectionRequest struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type SelectionResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Complete bool   `json:"complete"`
}

type NoticeResponse struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// DashboardResponse is everything the map view renders in one read.
type DashboardResponse struct {
	Status    string              `json:"status"`
	Pending   int                 `json:"pending"`
	Nodes     []NodeResponse      `json:"nodes"`
	Selection SelectionResponse   `json:"selection"`
	Current   *RouteViewResponse  `json:"current"`
	History   []RouteViewResponse `json:"history"`
	Notices   []NoticeResponse    `json:"notices"`
}
