package routeapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTimeLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2026-01-01T08:00:00.123456"`: time.Date(2026, 1, 1, 8, 0, 0, 123456000, time.UTC),
		`"2026-01-01T08:00:00Z"`:       time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		`"2026-01-01T10:00:00+02:00"`:  time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}

	for raw, want := range cases {
		var st serviceTime
		require.NoError(t, json.Unmarshal([]byte(raw), &st))
		got := st.ptr()
		require.NotNil(t, got, raw)
		assert.True(t, want.Equal(*got), "%s: got %v want %v", raw, got, want)
	}
}

func TestServiceTimeGarbageIsAbsent(t *testing.T) {
	var n nodeResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","timestamp":"yesterday"}`), &n))
	assert.Nil(t, n.toDomain().CreatedAt)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","timestamp":null}`), &n))
	assert.Nil(t, n.toDomain().CreatedAt)
}
