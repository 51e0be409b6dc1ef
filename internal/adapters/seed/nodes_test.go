package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"route-comparison-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": " Depot ", "lat": 40.70, "lng": -74.00},
		{"name": "Store", "lat": 40.72, "lng": -73.99}
	]`), 0o600))

	nodes, err := LoadNodes(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.NodeCreate{
		{Name: "Depot", Lat: 40.70, Lng: -74.00},
		{Name: "Store", Lat: 40.72, Lng: -73.99},
	}, nodes)
}

func TestParseNodesRejects(t *testing.T) {
	for _, raw := range []string{
		`{`,
		`[{"name": "", "lat": 1, "lng": 1}]`,
		`[{"name": "North", "lat": 91, "lng": 1}]`,
		`[{"name": "East", "lat": 1, "lng": -181}]`,
	} {
		_, err := ParseNodes([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestLoadNodesMissingFile(t *testing.T) {
	_, err := LoadNodes(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type fakeCreator struct {
	failOn string
	got    []string
}

func (f *fakeCreator) CreateNode(_ context.Context, in domain.NodeCreate) (domain.Node, error) {
	if in.Name == f.failOn {
		return domain.Node{}, &domain.NetworkError{Op: "add node", Err: errors.New("down")}
	}
	f.got = append(f.got, in.Name)
	return domain.Node{ID: "id-" + in.Name, Name: in.Name}, nil
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	f := &fakeCreator{failOn: "B"}
	created, err := Apply(context.Background(), f, []domain.NodeCreate{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	assert.ErrorIs(t, err, domain.ErrNetworkFailed)
	assert.Equal(t, []string{"A"}, f.got)
	require.Len(t, created, 1)
	assert.Equal(t, "id-A", created[0].ID)
}
