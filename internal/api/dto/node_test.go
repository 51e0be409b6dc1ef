package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeRequestKeepsRawText(t *testing.T) {
	var req AddNodeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hub","lat":40.7500,"lng":" -73.98 ","extra":null}`), &req))

	assert.Equal(t, FormValue("Hub"), req.Name)
	assert.Equal(t, FormValue("40.7500"), req.Lat)
	assert.Equal(t, FormValue(" -73.98 "), req.Lng)
}

func TestFormValueRejectsOtherTypes(t *testing.T) {
	for _, raw := range []string{`{"lat":true}`, `{"lat":[1]}`, `{"lat":{}}`} {
		var req AddNodeRequest
		assert.Error(t, json.Unmarshal([]byte(raw), &req), raw)
	}

	var req AddNodeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lat":null}`), &req))
	assert.Equal(t, FormValue(""), req.Lat)
}
