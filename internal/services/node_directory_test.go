package services

import (
	"testing"

	"route-comparison-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeDirectoryResolveIsTotal(t *testing.T) {
	d := NewNodeDirectory()

	assert.Equal(t, "ghost", d.ResolveName("ghost"))
	_, ok := d.ResolveCoordinates("ghost")
	assert.False(t, ok)

	require.NoError(t, d.ReplaceAll(depotAndStore))

	assert.Equal(t, "Depot", d.ResolveName("n1"))
	assert.Equal(t, "", d.ResolveName(""))
	c, ok := d.ResolveCoordinates("n2")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 40.72, Lng: -73.99}, c)
}

func TestNodeDirectoryKeepsServerOrder(t *testing.T) {
	d := NewNodeDirectory()
	nodes := []domain.Node{{ID: "z", Name: "Zulu"}, {ID: "a", Name: "Alpha"}, {ID: "m", Name: "Mike"}}
	require.NoError(t, d.ReplaceAll(nodes))

	assert.Equal(t, nodes, d.ListNodes())
}

func TestNodeDirectoryReplaceAllIsAtomic(t *testing.T) {
	d := NewNodeDirectory()
	require.NoError(t, d.ReplaceAll(depotAndStore))

	err := d.ReplaceAll([]domain.Node{{ID: "n3", Name: "New"}, {ID: "n3", Name: "Dup"}})
	assert.ErrorIs(t, err, ErrDuplicateNodeID)

	err = d.ReplaceAll([]domain.Node{{ID: "", Name: "Anon"}})
	assert.ErrorIs(t, err, ErrEmptyNodeID)

	assert.Equal(t, depotAndStore, d.ListNodes())

	require.NoError(t, d.ReplaceAll([]domain.Node{{ID: "n3", Name: "New"}}))
	assert.Equal(t, "n1", d.ResolveName("n1"), "replaced nodes are no longer resolvable")
	assert.Equal(t, "New", d.ResolveName("n3"))
}

func TestNodeDirectoryListIsACopy(t *testing.T) {
	d := NewNodeDirectory()
	require.NoError(t, d.ReplaceAll(depotAndStore))

	listed := d.ListNodes()
	listed[0].Name = "Mutated"

	assert.Equal(t, "Depot", d.ResolveName("n1"))
}
