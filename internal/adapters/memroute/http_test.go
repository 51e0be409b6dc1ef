package memroute

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"route-comparison-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body["detail"]
}

func TestHandlerRoutesByMethod(t *testing.T) {
	h := NewHandler(NewService(domain.Node{ID: "n1", Name: "Depot", Lat: 40.70, Lng: -74.00}))

	rec := serve(h, http.MethodGet, "/api/nodes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes []nodeJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "Depot", nodes[0].Name)

	rec = serve(h, http.MethodGet, "/api/route/optimize", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", detail(t, rec))

	rec = serve(h, http.MethodGet, "/api/graph", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", detail(t, rec))
}

func TestHandlerOptimizeErrors(t *testing.T) {
	h := NewHandler(NewService(domain.Node{ID: "n1", Name: "Depot", Lat: 40.70, Lng: -74.00}))

	rec := serve(h, http.MethodPost, "/api/route/optimize", `{"start_node_id":"n1","end_node_id":"ghost","algorithm":"dijkstra"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Start or end node not found", detail(t, rec))

	rec = serve(h, http.MethodPost, "/api/route/optimize", `{"start_node_id":"n1","end_node_id":"n1","algorithm":"astar"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/nodes", `{"name":"Hub"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
