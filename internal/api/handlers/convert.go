package handlers

import (
	"route-comparison-service/internal/api/dto"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/ports"
	"route-comparison-service/internal/services"
)

func toNodeResponses(nodes []domain.Node) []dto.NodeResponse {
	out := make([]dto.NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeResponse(n))
	}
	return out
}

func toNodeResponse(n domain.Node) dto.NodeResponse {
	return dto.NodeResponse{ID: n.ID, Name: n.Name, Lat: n.Lat, Lng: n.Lng, CreatedAt: n.CreatedAt}
}

func toResultResponse(r domain.RouteResult) dto.RouteResultResponse {
	path := r.Path
	if path == nil {
		path = []string{}
	}
	return dto.RouteResultResponse{
		ID:            r.ID,
		Algorithm:     string(r.Algorithm),
		StartNodeID:   r.StartNodeID,
		EndNodeID:     r.EndNodeID,
		Path:          path,
		Distance:      r.Distance,
		ExecutionTime: r.ExecutionTime,
		Timestamp:     r.CompletedAt,
	}
}

func toRouteView(v services.RouteView) dto.RouteViewResponse {
	return dto.RouteViewResponse{
		Result:       toResultResponse(v.Result),
		StartName:    v.StartName,
		EndName:      v.EndName,
		PathNames:    v.PathNames,
		Geometry:     v.Geometry.LatLngs(),
		Renderable:   v.Geometry.Renderable(),
		LineLengthKm: v.Geometry.LengthKm(),
	}
}

func toRouteViews(views []services.RouteView) []dto.RouteViewResponse {
	out := make([]dto.RouteViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toRouteView(v))
	}
	return out
}

func toSelectionResponse(s services.Selection) dto.SelectionResponse {
	return dto.SelectionResponse{Start: s.Start, End: s.End, Complete: s.Complete()}
}

func toNoticeResponses(notices []ports.Notice) []dto.NoticeResponse {
	out := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.NoticeResponse{Kind: string(n.Kind), Message: n.Message, At: n.At})
	}
	return out
}

func toComparisonResponse(c services.Comparison) dto.ComparisonResponse {
	res := dto.ComparisonResponse{
		Start:              c.Start,
		End:                c.End,
		Entries:            make([]dto.ComparisonEntryResponse, 0, len(c.Entries)),
		DistanceDelta:      c.DistanceDelta,
		ExecutionTimeDelta: c.ExecutionTimeDelta,
	}
	for _, e := range c.Entries {
		entry := dto.ComparisonEntryResponse{Algorithm: string(e.Algorithm)}
		if e.Result != nil {
			r := toResultResponse(*e.Result)
			entry.Result = &r
		}
		res.Entries = append(res.Entries, entry)
	}
	return res
}
